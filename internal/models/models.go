package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date form used on the wire and in prompts.
const DateLayout = "2006-01-02"

var ErrNotFound = errors.New("application not found")

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusOffer       ApplicationStatus = "offer"
	StatusRejected    ApplicationStatus = "rejected"
)

// StatusFilterAll matches every status when filtering.
const StatusFilterAll = "all"

var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterviewed,
	StatusOffer,
	StatusRejected,
}

func (s ApplicationStatus) IsValid() bool {
	for _, st := range ApplicationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Application struct {
	ID               string            `json:"id"`
	Company          string            `json:"company"`
	Position         string            `json:"position"`
	DateApplied      time.Time         `json:"dateApplied"`
	Status           ApplicationStatus `json:"status"`
	LinkToJobPosting string            `json:"linkToJobPosting"`
	Notes            string            `json:"notes,omitempty"`

	// Milestones, filled in as the application progresses
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
	OfferDate     *time.Time `json:"offerDate,omitempty"`
	RejectionDate *time.Time `json:"rejectionDate,omitempty"`
}

// NewApplication is everything the client supplies when adding an application.
// The store assigns the ID.
type NewApplication struct {
	Company          string
	Position         string
	DateApplied      time.Time
	Status           ApplicationStatus
	LinkToJobPosting string
	Notes            string
	InterviewDate    *time.Time
	OfferDate        *time.Time
	RejectionDate    *time.Time
}

func (n NewApplication) WithID(id string) Application {
	return Application{
		ID:               id,
		Company:          n.Company,
		Position:         n.Position,
		DateApplied:      n.DateApplied,
		Status:           n.Status,
		LinkToJobPosting: n.LinkToJobPosting,
		Notes:            n.Notes,
		InterviewDate:    n.InterviewDate,
		OfferDate:        n.OfferDate,
		RejectionDate:    n.RejectionDate,
	}
}

// Clone returns a copy that shares no pointers with a.
func (a Application) Clone() Application {
	c := a
	c.InterviewDate = cloneTime(a.InterviewDate)
	c.OfferDate = cloneTime(a.OfferDate)
	c.RejectionDate = cloneTime(a.RejectionDate)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

type NewsSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// NewsArticle mirrors the news provider's article payload.
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      *string    `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Content     string     `json:"content"`
}

func (a NewsArticle) HasImage() bool {
	return a.URLToImage != nil && *a.URLToImage != ""
}

type JobBoard struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type TimelineEvent struct {
	Date        time.Time         `json:"date"`
	Type        ApplicationStatus `json:"type"`
	Application Application       `json:"application"`
}
