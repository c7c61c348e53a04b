package store

import (
	"context"

	"github.com/justsurfingit/job-tracker/internal/models"
)

// Repository owns the canonical set of applications. List returns them most
// recent first.
type Repository interface {
	List(ctx context.Context) ([]models.Application, error)
	Get(ctx context.Context, id string) (models.Application, error)
	Add(ctx context.Context, app models.NewApplication) (models.Application, error)
	Update(ctx context.Context, app models.Application) (models.Application, error)
	Delete(ctx context.Context, id string) error
}
