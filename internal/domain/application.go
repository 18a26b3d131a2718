package domain

import (
	"errors"
	"time"
)

// ErrUnknownStatus is returned when a requested status is not a member of
// the entity's status enum.
var ErrUnknownStatus = errors.New("unknown status")

type OrganisationStatus string

const (
	OrganisationStatusSubmitted OrganisationStatus = "submitted"
	OrganisationStatusInterview OrganisationStatus = "interview_scheduled"
	OrganisationStatusTraining  OrganisationStatus = "training_scheduled"
	OrganisationStatusAccepted  OrganisationStatus = "accepted"
	OrganisationStatusDeclined  OrganisationStatus = "declined"
)

// Valid reports whether the status is a member of the organisation enum.
func (s OrganisationStatus) Valid() bool {
	switch s {
	case OrganisationStatusSubmitted, OrganisationStatusInterview,
		OrganisationStatusTraining, OrganisationStatusAccepted,
		OrganisationStatusDeclined:
		return true
	}
	return false
}

// Stage labels mirror the status lifecycle on organisation applications.
const (
	StageApplication = "application"
	StageInterview   = "interview"
	StageTraining    = "training"
	StageOnboarding  = "onboarding"
)

// DefaultStage returns the stage label that normally accompanies a status.
// Declined applications keep whatever stage they were in.
func DefaultStage(s OrganisationStatus) string {
	switch s {
	case OrganisationStatusSubmitted:
		return StageApplication
	case OrganisationStatusInterview:
		return StageInterview
	case OrganisationStatusTraining:
		return StageTraining
	case OrganisationStatusAccepted:
		return StageOnboarding
	}
	return ""
}

type OrganisationApplication struct {
	ID          string             `json:"id"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone,omitempty"`
	Location    string             `json:"location,omitempty"`
	RoleApplied string             `json:"role_applied,omitempty"`
	LinkedIn    string             `json:"linkedin,omitempty"`
	Portfolio   string             `json:"portfolio,omitempty"`
	ResumeURL   string             `json:"resume_url,omitempty"`
	Answers     AnswerMap          `json:"answers,omitempty"`
	Status      OrganisationStatus `json:"status"`
	Stage       string             `json:"stage,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Transition returns the (status, stage) pair the application should be
// persisted with for a requested target status. Any jump between known
// statuses is legal; only out-of-enum targets are rejected. An empty stage
// keeps the current one. Re-applying the current status is a no-op, not an
// error.
func (a *OrganisationApplication) Transition(target OrganisationStatus, stage string) (OrganisationStatus, string, error) {
	if !target.Valid() {
		return a.Status, a.Stage, ErrUnknownStatus
	}
	if stage == "" {
		stage = a.Stage
	}
	return target, stage, nil
}
