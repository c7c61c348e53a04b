package store

import (
	"time"

	"github.com/justsurfingit/job-tracker/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// SeedApplications is the initial list a fresh session starts with.
func SeedApplications() []models.Application {
	return []models.Application{
		{
			ID:               "1",
			Company:          "Google",
			Position:         "Software Engineer",
			DateApplied:      date(2024, time.May, 20),
			Status:           models.StatusInterviewed,
			LinkToJobPosting: "https://careers.google.com/jobs/",
			Notes:            "Referred by a former teammate.",
			InterviewDate:    datePtr(2024, time.June, 5),
		},
		{
			ID:               "2",
			Company:          "Stripe",
			Position:         "Backend Engineer",
			DateApplied:      date(2024, time.May, 15),
			Status:           models.StatusOffer,
			LinkToJobPosting: "https://stripe.com/jobs",
			InterviewDate:    datePtr(2024, time.May, 28),
			OfferDate:        datePtr(2024, time.June, 12),
		},
		{
			ID:               "3",
			Company:          "Netflix",
			Position:         "Senior Platform Engineer",
			DateApplied:      date(2024, time.May, 2),
			Status:           models.StatusRejected,
			LinkToJobPosting: "https://jobs.netflix.com/",
			RejectionDate:    datePtr(2024, time.May, 24),
		},
		{
			ID:               "4",
			Company:          "Vercel",
			Position:         "Developer Advocate",
			DateApplied:      date(2024, time.June, 1),
			Status:           models.StatusApplied,
			LinkToJobPosting: "https://vercel.com/careers",
		},
	}
}
