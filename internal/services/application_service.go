package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/justsurfingit/job-tracker/internal/dtos"
	"github.com/justsurfingit/job-tracker/internal/metrics"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/store"
	"github.com/justsurfingit/job-tracker/internal/validation"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var earliestDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type ApplicationService struct {
	Repo       store.Repository
	LLMService *LLMService
	Logger     *zap.Logger
	Now        func() time.Time
}

func NewApplicationService(repo store.Repository, llm *LLMService, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		Repo:       repo,
		LLMService: llm,
		Logger:     logger,
		Now:        time.Now,
	}
}

func (s *ApplicationService) Create(ctx context.Context, req dtos.ApplicationCreationRequest) (models.Application, error) {
	if err := validation.Validate(req); err != nil {
		return models.Application{}, err
	}

	status := models.ApplicationStatus(req.Status)
	if status == "" {
		status = models.StatusApplied
	}

	// Validate has already checked the date formats
	applied, _ := time.Parse(models.DateLayout, req.DateApplied)
	newApp := models.NewApplication{
		Company:          strings.TrimSpace(req.Company),
		Position:         strings.TrimSpace(req.Position),
		DateApplied:      applied,
		Status:           status,
		LinkToJobPosting: req.LinkToJobPosting,
		Notes:            req.Notes,
		InterviewDate:    parseOptionalDate(req.InterviewDate),
		OfferDate:        parseOptionalDate(req.OfferDate),
		RejectionDate:    parseOptionalDate(req.RejectionDate),
	}
	if err := s.checkDates(newApp.WithID("")); err != nil {
		return models.Application{}, err
	}

	app, err := s.Repo.Add(ctx, newApp)
	if err != nil {
		return models.Application{}, fmt.Errorf("add application: %w", err)
	}
	s.Logger.Info("application added",
		zap.String("id", app.ID), zap.String("company", app.Company), zap.String("position", app.Position))
	s.refreshGauge(ctx)
	return app, nil
}

// List returns the applications matching query and status, most recent first.
func (s *ApplicationService) List(ctx context.Context, query, status string) ([]models.Application, error) {
	if status != "" && status != models.StatusFilterAll && !models.ApplicationStatus(status).IsValid() {
		return nil, validation.Invalid("status", fmt.Sprintf("must be %q or one of %v", models.StatusFilterAll, models.ApplicationStatuses))
	}
	apps, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return store.Filter(apps, strings.TrimSpace(query), status), nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (models.Application, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("application deleted", zap.String("id", id))
	s.refreshGauge(ctx)
	return nil
}

// UpdateStatus moves the application to a new status and stamps the matching
// milestone date. Moving back to "applied" leaves milestones untouched.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, req dtos.StatusUpdateRequest) (models.Application, error) {
	if err := validation.Validate(req); err != nil {
		return models.Application{}, err
	}
	app, err := s.Repo.Get(ctx, id)
	if err != nil {
		return models.Application{}, err
	}

	day := s.today()
	if req.Date != "" {
		day, _ = time.Parse(models.DateLayout, req.Date)
	}

	app.Status = models.ApplicationStatus(req.Status)
	switch app.Status {
	case models.StatusInterviewed:
		app.InterviewDate = &day
	case models.StatusOffer:
		app.OfferDate = &day
	case models.StatusRejected:
		app.RejectionDate = &day
	}
	if err := s.checkDates(app); err != nil {
		return models.Application{}, err
	}

	updated, err := s.Repo.Update(ctx, app)
	if err != nil {
		return models.Application{}, err
	}
	s.Logger.Info("application status changed", zap.String("id", id), zap.String("status", req.Status))
	return updated, nil
}

// Timeline projects every application into its dated events, newest first.
func (s *ApplicationService) Timeline(ctx context.Context) ([]models.TimelineEvent, error) {
	apps, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	events := lo.FlatMap(apps, func(app models.Application, _ int) []models.TimelineEvent {
		evs := []models.TimelineEvent{{Date: app.DateApplied, Type: models.StatusApplied, Application: app}}
		if app.InterviewDate != nil {
			evs = append(evs, models.TimelineEvent{Date: *app.InterviewDate, Type: models.StatusInterviewed, Application: app})
		}
		if app.OfferDate != nil {
			evs = append(evs, models.TimelineEvent{Date: *app.OfferDate, Type: models.StatusOffer, Application: app})
		}
		if app.RejectionDate != nil {
			evs = append(evs, models.TimelineEvent{Date: *app.RejectionDate, Type: models.StatusRejected, Application: app})
		}
		return evs
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	return events, nil
}

// Summarize asks the model for a summary of a stored application.
func (s *ApplicationService) Summarize(ctx context.Context, id string) (dtos.SummaryResult, error) {
	app, err := s.Repo.Get(ctx, id)
	if err != nil {
		return dtos.SummaryResult{}, err
	}
	return s.LLMService.Summarize(ctx, dtos.SummarizeRequest{
		Company:           app.Company,
		Position:          app.Position,
		DateApplied:       app.DateApplied.Format(models.DateLayout),
		LinkToJobPosting:  app.LinkToJobPosting,
		ApplicationStatus: string(app.Status),
	})
}

// checkDates enforces the date policy: the application date is not in the
// future nor before 1900, and no milestone precedes it.
func (s *ApplicationService) checkDates(app models.Application) error {
	if app.DateApplied.After(s.today()) {
		return validation.Invalid("dateApplied", "must not be in the future")
	}
	if app.DateApplied.Before(earliestDate) {
		return validation.Invalid("dateApplied", "must not be before 1900-01-01")
	}
	milestones := []struct {
		field string
		date  *time.Time
	}{
		{"interviewDate", app.InterviewDate},
		{"offerDate", app.OfferDate},
		{"rejectionDate", app.RejectionDate},
	}
	for _, m := range milestones {
		if m.date != nil && m.date.Before(app.DateApplied) {
			return validation.Invalid(m.field, "must not precede dateApplied")
		}
	}
	return nil
}

func (s *ApplicationService) today() time.Time {
	now := s.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ApplicationService) refreshGauge(ctx context.Context) {
	if apps, err := s.Repo.List(ctx); err == nil {
		metrics.SetApplications(len(apps))
	}
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
