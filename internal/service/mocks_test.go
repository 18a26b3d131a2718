package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"digishield-backend/internal/domain"
)

type mockOrganisationRepo struct {
	mock.Mock
}

func (m *mockOrganisationRepo) Create(ctx context.Context, app *domain.OrganisationApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockOrganisationRepo) GetByID(ctx context.Context, id string) (*domain.OrganisationApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganisationApplication), args.Error(1)
}

func (m *mockOrganisationRepo) List(ctx context.Context, limit int) ([]domain.OrganisationApplication, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganisationApplication), args.Error(1)
}

func (m *mockOrganisationRepo) UpdateStatus(ctx context.Context, id string, status domain.OrganisationStatus, stage string) error {
	args := m.Called(ctx, id, status, stage)
	return args.Error(0)
}

func (m *mockOrganisationRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(domain.StatusCounts)
	return counts, args.Error(1)
}

type mockVolunteerRepo struct {
	mock.Mock
}

func (m *mockVolunteerRepo) Create(ctx context.Context, category domain.VolunteerCategory, app *domain.VolunteerApplication) error {
	args := m.Called(ctx, category, app)
	return args.Error(0)
}

func (m *mockVolunteerRepo) GetByID(ctx context.Context, category domain.VolunteerCategory, id string) (*domain.VolunteerApplication, error) {
	args := m.Called(ctx, category, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerApplication), args.Error(1)
}

func (m *mockVolunteerRepo) List(ctx context.Context, category domain.VolunteerCategory, limit int) ([]domain.VolunteerApplication, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VolunteerApplication), args.Error(1)
}

func (m *mockVolunteerRepo) UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, status domain.VolunteerStatus) error {
	args := m.Called(ctx, category, id, status)
	return args.Error(0)
}

func (m *mockVolunteerRepo) CountByStatus(ctx context.Context, category domain.VolunteerCategory) (domain.StatusCounts, error) {
	args := m.Called(ctx, category)
	counts, _ := args.Get(0).(domain.StatusCounts)
	return counts, args.Error(1)
}

type mockNewsletterRepo struct {
	mock.Mock
}

func (m *mockNewsletterRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockNewsletterRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockTeamRepo struct {
	mock.Mock
}

func (m *mockTeamRepo) List(ctx context.Context) ([]domain.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int32) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockTeamRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	args := m.Called(ctx, urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *mockMediaRepo) Insert(ctx context.Context, items []domain.MediaItem) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func (m *mockMediaRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
