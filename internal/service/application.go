package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"
)

// listLimit caps admin list views, newest first.
const listLimit = 500

type applicationService struct {
	repo     repository.OrganisationApplicationRepository
	notifier NotificationService
}

func NewApplicationService(repo repository.OrganisationApplicationRepository, notifier NotificationService) ApplicationService {
	return &applicationService{repo: repo, notifier: notifier}
}

func (s *applicationService) Submit(ctx context.Context, sub OrganisationSubmission) (*domain.OrganisationApplication, error) {
	app := &domain.OrganisationApplication{
		FullName:    sub.FullName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Location:    sub.Location,
		RoleApplied: sub.RoleApplied,
		LinkedIn:    sub.LinkedIn,
		Portfolio:   sub.Portfolio,
		Answers:     sub.Answers,
		Status:      domain.OrganisationStatusSubmitted,
		Stage:       domain.StageApplication,
	}
	if app.Answers == nil {
		app.Answers = domain.AnswerMap{}
	}

	// Resume uploads are logged, not persisted.
	if sub.ResumeName != "" && sub.ResumeSize > 0 {
		logger.Info("Resume received with application", "file", sub.ResumeName, "size", sub.ResumeSize)
		app.ResumeURL = fmt.Sprintf("File: %s (%d bytes)", sub.ResumeName, sub.ResumeSize)
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create organisation application: %w", err)
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, filter string) ([]domain.OrganisationApplication, error) {
	apps, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisation applications: %w", err)
	}
	if filter == "" {
		return apps, nil
	}
	needle := strings.ToLower(filter)
	filtered := make([]domain.OrganisationApplication, 0, len(apps))
	for _, a := range apps {
		haystack := strings.ToLower(a.FullName + a.Email + a.RoleApplied)
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// UpdateStatus moves an application to the target status, persists the new
// (status, stage) pair and returns the matching notification draft.
func (s *applicationService) UpdateStatus(ctx context.Context, id string, target domain.OrganisationStatus, stage string) (*domain.OrganisationApplication, *Draft, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get organisation application: %w", err)
	}

	status, newStage, err := app.Transition(target, stage)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpdateStatus(ctx, app.ID, status, newStage); err != nil {
		return nil, nil, fmt.Errorf("failed to update organisation application status: %w", err)
	}
	app.Status = status
	app.Stage = newStage

	draft, err := s.notifier.OrganisationDraft(app, status)
	if err != nil {
		return nil, nil, err
	}
	return app, draft, nil
}

func (s *applicationService) ExportRows(ctx context.Context) ([]*export.Row, error) {
	apps, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisation applications: %w", err)
	}
	rows := make([]*export.Row, 0, len(apps))
	for _, a := range apps {
		row := export.NewRow().
			Set("id", a.ID).
			Set("full_name", a.FullName).
			Set("email", a.Email).
			Set("phone", a.Phone).
			Set("location", a.Location).
			Set("role_applied", a.RoleApplied).
			Set("linkedin", a.LinkedIn).
			Set("portfolio", a.Portfolio).
			Set("resume_url", a.ResumeURL).
			Set("status", string(a.Status)).
			Set("stage", a.Stage).
			Set("created_at", a.CreatedAt.Format("2006-01-02 15:04:05"))
		// Map iteration order is random; sorted keys keep the export
		// header stable across runs.
		keys := make([]string, 0, len(a.Answers))
		for key := range a.Answers {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			row.Set("answer_"+key, a.Answers[key].Export())
		}
		rows = append(rows, row)
	}
	return rows, nil
}
