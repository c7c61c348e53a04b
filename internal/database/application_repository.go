package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/justsurfingit/job-tracker/internal/models"
	"gorm.io/gorm"
)

type ApplicationRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Company          string     `gorm:"not null"`
	Position         string     `gorm:"not null"`
	DateApplied      time.Time  `gorm:"type:date;not null"`
	Status           string     `gorm:"not null;default:'applied'"`
	LinkToJobPosting string     `gorm:"not null"`
	Notes            string     `gorm:"type:text"`
	InterviewDate    *time.Time `gorm:"type:date"`
	OfferDate        *time.Time `gorm:"type:date"`
	RejectionDate    *time.Time `gorm:"type:date"`
}

func (ApplicationRecord) TableName() string { return "applications" }

// ApplicationRepository stores applications in Postgres. Rows are soft
// deleted, so the serial id of a deleted row is never handed out again.
type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

// Seed inserts apps when the table is empty. The first app ends up newest.
func (r *ApplicationRepository) Seed(ctx context.Context, apps []models.Application) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&ApplicationRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := len(apps) - 1; i >= 0; i-- {
		rec := toRecord(apps[i])
		rec.ID = 0
		if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
			return fmt.Errorf("seed %s: %w", apps[i].Company, err)
		}
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]models.Application, error) {
	var recs []ApplicationRecord
	if err := r.DB.WithContext(ctx).Order("id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	apps := make([]models.Application, len(recs))
	for i, rec := range recs {
		apps[i] = rec.toModel()
	}
	return apps, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id string) (models.Application, error) {
	rec, err := r.find(ctx, id)
	if err != nil {
		return models.Application{}, err
	}
	return rec.toModel(), nil
}

func (r *ApplicationRepository) Add(ctx context.Context, app models.NewApplication) (models.Application, error) {
	rec := toRecord(app.WithID(""))
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Application{}, err
	}
	return rec.toModel(), nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app models.Application) (models.Application, error) {
	existing, err := r.find(ctx, app.ID)
	if err != nil {
		return models.Application{}, err
	}
	rec := toRecord(app)
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	if err := r.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return models.Application{}, err
	}
	return rec.toModel(), nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return models.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Delete(&ApplicationRecord{}, n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) find(ctx context.Context, id string) (ApplicationRecord, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return ApplicationRecord{}, models.ErrNotFound
	}
	var rec ApplicationRecord
	err = r.DB.WithContext(ctx).First(&rec, n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ApplicationRecord{}, models.ErrNotFound
	}
	return rec, err
}

func toRecord(app models.Application) ApplicationRecord {
	rec := ApplicationRecord{
		Company:          app.Company,
		Position:         app.Position,
		DateApplied:      app.DateApplied,
		Status:           string(app.Status),
		LinkToJobPosting: app.LinkToJobPosting,
		Notes:            app.Notes,
		InterviewDate:    app.InterviewDate,
		OfferDate:        app.OfferDate,
		RejectionDate:    app.RejectionDate,
	}
	if n, err := strconv.ParseUint(app.ID, 10, 64); err == nil {
		rec.ID = uint(n)
	}
	return rec
}

func (rec ApplicationRecord) toModel() models.Application {
	return models.Application{
		ID:               strconv.FormatUint(uint64(rec.ID), 10),
		Company:          rec.Company,
		Position:         rec.Position,
		DateApplied:      rec.DateApplied.UTC(),
		Status:           models.ApplicationStatus(rec.Status),
		LinkToJobPosting: rec.LinkToJobPosting,
		Notes:            rec.Notes,
		InterviewDate:    utc(rec.InterviewDate),
		OfferDate:        utc(rec.OfferDate),
		RejectionDate:    utc(rec.RejectionDate),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
