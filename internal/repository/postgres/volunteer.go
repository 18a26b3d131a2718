package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type volunteerRepository struct {
	db *sql.DB
}

func NewVolunteerRepository(db *sql.DB) repository.VolunteerRepository {
	return &volunteerRepository{db: db}
}

// Table names come from the closed VolunteerCategory enum, never from user
// input, so interpolating them into query strings is safe.

func (r *volunteerRepository) Create(ctx context.Context, category domain.VolunteerCategory, app *domain.VolunteerApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now().UTC()
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, name, email, phone, location, skills, availability, status, applied_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, category.Table())
	logger.DatabaseCall("INSERT", category.Table(), "id", app.ID)
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.Name, app.Email, app.Phone, app.Location,
		pq.Array(app.Skills), app.Availability, app.Status, app.AppliedAt)
	logger.DatabaseResult("INSERT", 1, err, "id", app.ID)
	return err
}

func (r *volunteerRepository) GetByID(ctx context.Context, category domain.VolunteerCategory, id string) (*domain.VolunteerApplication, error) {
	app := &domain.VolunteerApplication{}
	query := fmt.Sprintf(`SELECT id, name, email, phone, location, skills, availability, status, applied_at
	          FROM %s WHERE id = $1`, category.Table())
	logger.DatabaseCall("SELECT", category.Table(), "id", id)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Email, &app.Phone, &app.Location,
		pq.Array(&app.Skills), &app.Availability, &app.Status, &app.AppliedAt)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "id", id)
		return nil, err
	}
	logger.DatabaseResult("SELECT", 1, nil, "id", id)
	return app, nil
}

func (r *volunteerRepository) List(ctx context.Context, category domain.VolunteerCategory, limit int) ([]domain.VolunteerApplication, error) {
	query := fmt.Sprintf(`SELECT id, name, email, phone, location, skills, availability, status, applied_at
	          FROM %s ORDER BY applied_at DESC LIMIT $1`, category.Table())
	logger.DatabaseCall("SELECT", category.Table(), "limit", limit)
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "limit", limit)
		return nil, err
	}
	defer rows.Close()

	var apps []domain.VolunteerApplication
	for rows.Next() {
		var app domain.VolunteerApplication
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Email, &app.Phone, &app.Location,
			pq.Array(&app.Skills), &app.Availability, &app.Status, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	logger.DatabaseResult("SELECT", int64(len(apps)), rows.Err(), "limit", limit)
	return apps, rows.Err()
}

func (r *volunteerRepository) UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, status domain.VolunteerStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, category.Table())
	logger.DatabaseCall("UPDATE", category.Table(), "id", id, "status", status)
	_, err := r.db.ExecContext(ctx, query, status, id)
	logger.DatabaseResult("UPDATE", 1, err, "id", id)
	return err
}

func (r *volunteerRepository) CountByStatus(ctx context.Context, category domain.VolunteerCategory) (domain.StatusCounts, error) {
	counts := domain.StatusCounts{ByStatus: map[string]int{}}
	query := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status`, category.Table())
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
