package repository

import (
	"context"

	"digishield-backend/internal/domain"
)

type OrganisationApplicationRepository interface {
	Create(ctx context.Context, app *domain.OrganisationApplication) error
	GetByID(ctx context.Context, id string) (*domain.OrganisationApplication, error)
	List(ctx context.Context, limit int) ([]domain.OrganisationApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrganisationStatus, stage string) error
	CountByStatus(ctx context.Context) (domain.StatusCounts, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, category domain.VolunteerCategory, app *domain.VolunteerApplication) error
	GetByID(ctx context.Context, category domain.VolunteerCategory, id string) (*domain.VolunteerApplication, error)
	List(ctx context.Context, category domain.VolunteerCategory, limit int) ([]domain.VolunteerApplication, error)
	UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, status domain.VolunteerStatus) error
	CountByStatus(ctx context.Context, category domain.VolunteerCategory) (domain.StatusCounts, error)
}

type NewsletterRepository interface {
	// Subscribe upserts on email uniqueness, refreshing the name and
	// re-activating a previously unsubscribed address.
	Subscribe(ctx context.Context, sub *domain.NewsletterSubscription) error
	Count(ctx context.Context) (int, error)
}

type MediaRepository interface {
	ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error)
	Insert(ctx context.Context, items []domain.MediaItem) (int, error)
	Count(ctx context.Context) (int, error)
}

type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id int32) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id int32) error
}
