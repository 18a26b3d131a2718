package service

import (
	"context"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
)

// OrganisationSubmission is a public organisation application form payload.
type OrganisationSubmission struct {
	FullName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string
	Location    string
	RoleApplied string
	LinkedIn    string
	Portfolio   string
	Answers     domain.AnswerMap
	ResumeName  string
	ResumeSize  int64
}

// VolunteerSubmission is a public volunteer application form payload.
type VolunteerSubmission struct {
	Name         string `validate:"required"`
	Email        string `validate:"required,email"`
	Phone        string `validate:"required"`
	Location     string `validate:"required"`
	Role         string `validate:"required"`
	Skills       []string
	Availability string
}

type ApplicationService interface {
	Submit(ctx context.Context, sub OrganisationSubmission) (*domain.OrganisationApplication, error)
	List(ctx context.Context, filter string) ([]domain.OrganisationApplication, error)
	UpdateStatus(ctx context.Context, id string, target domain.OrganisationStatus, stage string) (*domain.OrganisationApplication, *Draft, error)
	ExportRows(ctx context.Context) ([]*export.Row, error)
}

type VolunteerService interface {
	Submit(ctx context.Context, sub VolunteerSubmission) (domain.VolunteerCategory, *domain.VolunteerApplication, error)
	List(ctx context.Context, category domain.VolunteerCategory, filter string) ([]domain.VolunteerApplication, error)
	UpdateStatus(ctx context.Context, category domain.VolunteerCategory, id string, target domain.VolunteerStatus, message string) (*domain.VolunteerApplication, *Draft, error)
	InviteDraft(ctx context.Context, category domain.VolunteerCategory, id string, template InviteTemplate) (*Draft, error)
	ExportRows(ctx context.Context, category domain.VolunteerCategory) ([]*export.Row, error)
}

// NotificationService composes email drafts. Nothing here sends mail: the
// draft is returned to the dashboard, which hands it to the admin's own
// mail client (or clipboard, for long bodies).
type NotificationService interface {
	OrganisationDraft(app *domain.OrganisationApplication, target domain.OrganisationStatus) (*Draft, error)
	VolunteerDraft(app *domain.VolunteerApplication, target domain.VolunteerStatus, message string) *Draft
	VolunteerInvite(app *domain.VolunteerApplication, template InviteTemplate) (*Draft, error)
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email, name string) (*domain.NewsletterSubscription, error)
}

type MediaService interface {
	Sync(ctx context.Context) (*domain.MediaSyncResult, error)
}

type TeamService interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id int32) error
}

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
