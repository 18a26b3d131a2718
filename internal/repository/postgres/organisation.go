package postgres

import (
	"context"
	"database/sql"
	"time"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"

	"github.com/google/uuid"
)

type organisationApplicationRepository struct {
	db *sql.DB
}

func NewOrganisationApplicationRepository(db *sql.DB) repository.OrganisationApplicationRepository {
	return &organisationApplicationRepository{db: db}
}

func (r *organisationApplicationRepository) Create(ctx context.Context, app *domain.OrganisationApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO organisation_applications
	          (id, full_name, email, phone, location, role_applied, linkedin, portfolio, resume_url, answers, status, stage, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	logger.DatabaseCall("INSERT", "organisation_applications", "id", app.ID)
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.FullName, app.Email, app.Phone, app.Location, app.RoleApplied,
		app.LinkedIn, app.Portfolio, app.ResumeURL, app.Answers, app.Status, app.Stage, app.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "id", app.ID)
	return err
}

func (r *organisationApplicationRepository) GetByID(ctx context.Context, id string) (*domain.OrganisationApplication, error) {
	app := &domain.OrganisationApplication{}
	query := `SELECT id, full_name, email, phone, location, role_applied, linkedin, portfolio, resume_url, answers, status, stage, created_at
	          FROM organisation_applications WHERE id = $1`
	logger.DatabaseCall("SELECT", "organisation_applications", "id", id)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.FullName, &app.Email, &app.Phone, &app.Location, &app.RoleApplied,
		&app.LinkedIn, &app.Portfolio, &app.ResumeURL, &app.Answers, &app.Status, &app.Stage, &app.CreatedAt)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "id", id)
		return nil, err
	}
	logger.DatabaseResult("SELECT", 1, nil, "id", id)
	return app, nil
}

func (r *organisationApplicationRepository) List(ctx context.Context, limit int) ([]domain.OrganisationApplication, error) {
	query := `SELECT id, full_name, email, phone, location, role_applied, linkedin, portfolio, resume_url, answers, status, stage, created_at
	          FROM organisation_applications ORDER BY created_at DESC LIMIT $1`
	logger.DatabaseCall("SELECT", "organisation_applications", "limit", limit)
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "limit", limit)
		return nil, err
	}
	defer rows.Close()

	var apps []domain.OrganisationApplication
	for rows.Next() {
		var app domain.OrganisationApplication
		if err := rows.Scan(
			&app.ID, &app.FullName, &app.Email, &app.Phone, &app.Location, &app.RoleApplied,
			&app.LinkedIn, &app.Portfolio, &app.ResumeURL, &app.Answers, &app.Status, &app.Stage, &app.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	logger.DatabaseResult("SELECT", int64(len(apps)), rows.Err(), "limit", limit)
	return apps, rows.Err()
}

func (r *organisationApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.OrganisationStatus, stage string) error {
	query := `UPDATE organisation_applications SET status = $1, stage = $2 WHERE id = $3`
	logger.DatabaseCall("UPDATE", "organisation_applications", "id", id, "status", status)
	_, err := r.db.ExecContext(ctx, query, status, stage, id)
	logger.DatabaseResult("UPDATE", 1, err, "id", id)
	return err
}

func (r *organisationApplicationRepository) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	counts := domain.StatusCounts{ByStatus: map[string]int{}}
	query := `SELECT status, COUNT(*) FROM organisation_applications GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, err
		}
		counts.ByStatus[status] = n
		counts.Total += n
	}
	return counts, rows.Err()
}
