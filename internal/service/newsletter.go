package service

import (
	"context"
	"fmt"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/repository"
)

type newsletterService struct {
	repo repository.NewsletterRepository
}

func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(ctx context.Context, email, name string) (*domain.NewsletterSubscription, error) {
	sub := &domain.NewsletterSubscription{
		Email: email,
		Name:  name,
	}
	if err := s.repo.Subscribe(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}
