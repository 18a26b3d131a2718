package postgres

import (
	"context"
	"database/sql"
	"time"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"
)

type newsletterRepository struct {
	db *sql.DB
}

func NewNewsletterRepository(db *sql.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Subscribe(ctx context.Context, sub *domain.NewsletterSubscription) error {
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now().UTC()
	}
	sub.IsActive = true
	query := `INSERT INTO newsletter_subscriptions (email, name, is_active, subscribed_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, is_active = TRUE
	          RETURNING id`
	logger.DatabaseCall("UPSERT", "newsletter_subscriptions", "email", sub.Email)
	err := r.db.QueryRowContext(ctx, query, sub.Email, sub.Name, sub.IsActive, sub.SubscribedAt).Scan(&sub.ID)
	logger.DatabaseResult("UPSERT", 1, err, "id", sub.ID)
	return err
}

func (r *newsletterRepository) Count(ctx context.Context) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM newsletter_subscriptions WHERE is_active = TRUE`
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
