package service

import (
	"context"
	"fmt"
	"strings"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/repository"
)

type volunteerService struct {
	repo     repository.VolunteerRepository
	notifier NotificationService
}

func NewVolunteerService(repo repository.VolunteerRepository, notifier NotificationService) VolunteerService {
	return &volunteerService{repo: repo, notifier: notifier}
}

// Submit routes the application into the category table matching its
// free-text role and records it as pending.
func (s *volunteerService) Submit(ctx context.Context, sub VolunteerSubmission) (domain.VolunteerCategory, *domain.VolunteerApplication, error) {
	category := domain.CategoryForRole(sub.Role)
	app := &domain.VolunteerApplication{
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Location:     sub.Location,
		Skills:       sub.Skills,
		Availability: sub.Availability,
		Status:       domain.VolunteerStatusPending,
	}
	if app.Skills == nil {
		app.Skills = []string{}
	}
	if err := s.repo.Create(ctx, category, app); err != nil {
		return category, nil, fmt.Errorf("failed to create volunteer application: %w", err)
	}
	return category, app, nil
}

func (s *volunteerService) List(ctx context.Context, category domain.VolunteerCategory, filter string) ([]domain.VolunteerApplication, error) {
	apps, err := s.repo.List(ctx, category, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer applications: %w", err)
	}
	if filter == "" {
		return apps, nil
	}
	needle := strings.ToLower(filter)
	filtered := make([]domain.VolunteerApplication, 0, len(apps))
	for _, v := range apps {
		haystack := strings.ToLower(v.Name + v.Email + strings.Join(v.Skills, ","))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// UpdateStatus persists the new status and returns the notification draft
// built from the admin's message, falling back to the status default when
// the message is empty.
func (s *volunteerService) UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, target domain.VolunteerStatus, message string) (*domain.VolunteerApplication, *Draft, error) {
	app, err := s.repo.GetByID(ctx, category, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get volunteer application: %w", err)
	}

	status, err := app.Transition(target)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpdateStatus(ctx, category, app.ID, status); err != nil {
		return nil, nil, fmt.Errorf("failed to update volunteer status: %w", err)
	}
	app.Status = status

	draft := s.notifier.VolunteerDraft(app, status, message)
	return app, draft, nil
}

func (s *volunteerService) InviteDraft(ctx context.Context, category domain.VolunteerCategory, id string, template InviteTemplate) (*Draft, error) {
	app, err := s.repo.GetByID(ctx, category, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get volunteer application: %w", err)
	}
	return s.notifier.VolunteerInvite(app, template)
}

func (s *volunteerService) ExportRows(ctx context.Context, category domain.VolunteerCategory) ([]*export.Row, error) {
	apps, err := s.repo.List(ctx, category, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer applications: %w", err)
	}
	rows := make([]*export.Row, 0, len(apps))
	for _, v := range apps {
		rows = append(rows, export.NewRow().
			Set("id", v.ID).
			Set("name", v.Name).
			Set("email", v.Email).
			Set("phone", v.Phone).
			Set("location", v.Location).
			Set("skills", v.Skills).
			Set("availability", v.Availability).
			Set("status", string(v.Status)).
			Set("applied_at", v.AppliedAt.Format("2006-01-02 15:04:05")))
	}
	return rows, nil
}
