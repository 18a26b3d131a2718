package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/service"
)

type mockApplicationService struct {
	mock.Mock
}

func (m *mockApplicationService) Submit(ctx context.Context, sub service.OrganisationSubmission) (*domain.OrganisationApplication, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganisationApplication), args.Error(1)
}

func (m *mockApplicationService) List(ctx context.Context, filter string) ([]domain.OrganisationApplication, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganisationApplication), args.Error(1)
}

func (m *mockApplicationService) UpdateStatus(ctx context.Context, id string, target domain.OrganisationStatus, stage string) (*domain.OrganisationApplication, *service.Draft, error) {
	args := m.Called(ctx, id, target, stage)
	app, _ := args.Get(0).(*domain.OrganisationApplication)
	draft, _ := args.Get(1).(*service.Draft)
	return app, draft, args.Error(2)
}

func (m *mockApplicationService) ExportRows(ctx context.Context) ([]*export.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*export.Row), args.Error(1)
}

type mockVolunteerService struct {
	mock.Mock
}

func (m *mockVolunteerService) Submit(ctx context.Context, sub service.VolunteerSubmission) (domain.VolunteerCategory, *domain.VolunteerApplication, error) {
	args := m.Called(ctx, sub)
	app, _ := args.Get(1).(*domain.VolunteerApplication)
	return args.Get(0).(domain.VolunteerCategory), app, args.Error(2)
}

func (m *mockVolunteerService) List(ctx context.Context, category domain.VolunteerCategory, filter string) ([]domain.VolunteerApplication, error) {
	args := m.Called(ctx, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VolunteerApplication), args.Error(1)
}

func (m *mockVolunteerService) UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, target domain.VolunteerStatus, message string) (*domain.VolunteerApplication, *service.Draft, error) {
	args := m.Called(ctx, category, id, target, message)
	app, _ := args.Get(0).(*domain.VolunteerApplication)
	draft, _ := args.Get(1).(*service.Draft)
	return app, draft, args.Error(2)
}

func (m *mockVolunteerService) InviteDraft(ctx context.Context, category domain.VolunteerCategory, id string, template service.InviteTemplate) (*service.Draft, error) {
	args := m.Called(ctx, category, id, template)
	draft, _ := args.Get(0).(*service.Draft)
	return draft, args.Error(1)
}

func (m *mockVolunteerService) ExportRows(ctx context.Context, category domain.VolunteerCategory) ([]*export.Row, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*export.Row), args.Error(1)
}

type mockNewsletterService struct {
	mock.Mock
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email, name string) (*domain.NewsletterSubscription, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterSubscription), args.Error(1)
}

type mockMediaService struct {
	mock.Mock
}

func (m *mockMediaService) Sync(ctx context.Context) (*domain.MediaSyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaSyncResult), args.Error(1)
}

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *mockTeamService) Create(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockTeamService) Update(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockTeamService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
