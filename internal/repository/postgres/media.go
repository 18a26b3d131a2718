package postgres

import (
	"context"
	"database/sql"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"

	"github.com/lib/pq"
)

type mediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(urls) == 0 {
		return existing, nil
	}
	query := `SELECT image_url FROM media_items WHERE image_url = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(urls))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		existing[url] = true
	}
	return existing, rows.Err()
}

func (r *mediaRepository) Insert(ctx context.Context, items []domain.MediaItem) (int, error) {
	inserted := 0
	query := `INSERT INTO media_items (title, description, category, image_url)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (image_url) DO NOTHING`
	logger.DatabaseCall("INSERT", "media_items", "items", len(items))
	for _, item := range items {
		res, err := r.db.ExecContext(ctx, query, item.Title, item.Description, item.Category, item.ImageURL)
		if err != nil {
			logger.DatabaseResult("INSERT", int64(inserted), err, "imageURL", item.ImageURL)
			return inserted, err
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	logger.DatabaseResult("INSERT", int64(inserted), nil, "items", len(items))
	return inserted, nil
}

func (r *mediaRepository) Count(ctx context.Context) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM media_items`
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
