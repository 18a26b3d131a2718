package service

import (
	"context"
	"fmt"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/repository"
)

type statsService struct {
	appRepo        repository.OrganisationApplicationRepository
	volunteerRepo  repository.VolunteerRepository
	newsletterRepo repository.NewsletterRepository
	mediaRepo      repository.MediaRepository
}

func NewStatsService(
	appRepo repository.OrganisationApplicationRepository,
	volunteerRepo repository.VolunteerRepository,
	newsletterRepo repository.NewsletterRepository,
	mediaRepo repository.MediaRepository,
) StatsService {
	return &statsService{
		appRepo:        appRepo,
		volunteerRepo:  volunteerRepo,
		newsletterRepo: newsletterRepo,
		mediaRepo:      mediaRepo,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		Volunteers: make(map[domain.VolunteerCategory]domain.StatusCounts),
	}

	apps, err := s.appRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	stats.Applications = apps

	for _, category := range domain.Categories {
		counts, err := s.volunteerRepo.CountByStatus(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s volunteers: %w", category, err)
		}
		stats.Volunteers[category] = counts
	}

	subscribers, err := s.newsletterRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count newsletter subscribers: %w", err)
	}
	stats.NewsletterSubscribers = subscribers

	media, err := s.mediaRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count media items: %w", err)
	}
	stats.MediaItems = media

	return stats, nil
}
