package service

import (
	"context"
	"fmt"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/repository"
)

type teamService struct {
	repo repository.TeamRepository
}

func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func (s *teamService) Create(ctx context.Context, member *domain.TeamMember) error {
	member.IsActive = true
	if err := s.repo.Create(ctx, member); err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (s *teamService) Update(ctx context.Context, member *domain.TeamMember) error {
	if _, err := s.repo.GetByID(ctx, member.ID); err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if err := s.repo.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	return nil
}

func (s *teamService) Delete(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
