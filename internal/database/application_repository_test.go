package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*ApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return NewApplicationRepository(db), mock
}

func TestRecordConversion(t *testing.T) {
	interview := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	app := models.Application{
		ID:               "12",
		Company:          "Acme",
		Position:         "SRE",
		DateApplied:      time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		Status:           models.StatusInterviewed,
		LinkToJobPosting: "https://acme.example/jobs/1",
		Notes:            "n",
		InterviewDate:    &interview,
	}

	rec := toRecord(app)
	assert.Equal(t, uint(12), rec.ID)
	assert.Equal(t, "interviewed", rec.Status)
	assert.Equal(t, app, rec.toModel())

	assert.Equal(t, uint(0), toRecord(models.Application{ID: ""}).ID)
}

func TestList_OrdersNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "company", "position", "date_applied", "status", "link_to_job_posting"}).
		AddRow(7, "Beta Corp", "SRE", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "offer", "https://beta.example").
		AddRow(3, "Acme", "SRE", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "applied", "https://acme.example")
	mock.ExpectQuery(`SELECT \* FROM "applications" WHERE .*ORDER BY id desc`).
		WillReturnRows(rows)

	apps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "7", apps[0].ID)
	assert.Equal(t, models.StatusOffer, apps[0].Status)
	assert.Equal(t, "3", apps[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_ReturnsAssignedID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	app, err := repo.Add(context.Background(), models.NewApplication{
		Company:          "Acme",
		Position:         "SRE",
		DateApplied:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:           models.StatusApplied,
		LinkToJobPosting: "https://acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", app.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "applications" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "99")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, repo.Delete(context.Background(), "not-a-number"), models.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), "5")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_InsertsOldestFirstIntoEmptyTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	apps := []models.Application{
		{ID: "1", Company: "Google", Position: "SWE", DateApplied: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), Status: models.StatusInterviewed, LinkToJobPosting: "https://google.example"},
		{ID: "2", Company: "Stripe", Position: "SRE", DateApplied: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), Status: models.StatusOffer, LinkToJobPosting: "https://stripe.example"},
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// The last app goes in first so the first app gets the highest id.
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Stripe",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Google",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	require.NoError(t, repo.Seed(context.Background(), apps))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_SkipsPopulatedTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, repo.Seed(context.Background(), []models.Application{{Company: "Google"}}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_SavesChanges(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "applications" WHERE "applications"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "company", "position", "date_applied", "status", "link_to_job_posting"}).
			AddRow(4, created, "Acme", "SRE", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "interviewed", "https://acme.example"))
	mock.ExpectExec(`UPDATE "applications" SET .*"status"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	offer := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	app, err := repo.Update(context.Background(), models.Application{
		ID:               "4",
		Company:          "Acme",
		Position:         "SRE",
		DateApplied:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:           models.StatusOffer,
		LinkToJobPosting: "https://acme.example",
		OfferDate:        &offer,
	})
	require.NoError(t, err)
	assert.Equal(t, "4", app.ID)
	assert.Equal(t, models.StatusOffer, app.Status)
	require.NotNil(t, app.OfferDate)
	assert.True(t, offer.Equal(*app.OfferDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Update(context.Background(), models.Application{ID: "8", Status: models.StatusOffer})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_SoftDeletes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "applications" SET "deleted_at"=\$1 WHERE "applications"."id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "4"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
