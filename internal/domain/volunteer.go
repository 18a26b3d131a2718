package domain

import (
	"strings"
	"time"
)

type VolunteerStatus string

const (
	VolunteerStatusPending  VolunteerStatus = "pending"
	VolunteerStatusActive   VolunteerStatus = "active"
	VolunteerStatusInactive VolunteerStatus = "inactive"
	VolunteerStatusRejected VolunteerStatus = "rejected"
)

// Valid reports whether the status is a member of the volunteer enum.
func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerStatusPending, VolunteerStatusActive,
		VolunteerStatusInactive, VolunteerStatusRejected:
		return true
	}
	return false
}

// VolunteerCategory selects which physical table a volunteer record lives in.
type VolunteerCategory string

const (
	CategoryTrainer     VolunteerCategory = "trainer"
	CategoryAmbassador  VolunteerCategory = "ambassador"
	CategoryCoordinator VolunteerCategory = "coordinator"
	CategoryResponder   VolunteerCategory = "responder"
)

// Categories lists all volunteer categories in dashboard tab order.
var Categories = []VolunteerCategory{
	CategoryTrainer,
	CategoryAmbassador,
	CategoryCoordinator,
	CategoryResponder,
}

func (c VolunteerCategory) Valid() bool {
	switch c {
	case CategoryTrainer, CategoryAmbassador, CategoryCoordinator, CategoryResponder:
		return true
	}
	return false
}

// Table returns the physical table backing the category.
func (c VolunteerCategory) Table() string {
	switch c {
	case CategoryAmbassador:
		return "volunteer_awareness_ambassadors"
	case CategoryCoordinator:
		return "volunteer_community_coordinators"
	case CategoryResponder:
		return "volunteer_incident_responders"
	default:
		return "volunteer_cyber_trainers"
	}
}

// CategoryForRole routes a free-text role into a category by
// case-insensitive substring match. Unmatched roles, including the empty
// string, default to trainer.
func CategoryForRole(role string) VolunteerCategory {
	key := strings.ToLower(role)
	switch {
	case strings.Contains(key, "ambassador"):
		return CategoryAmbassador
	case strings.Contains(key, "coordinator"):
		return CategoryCoordinator
	case strings.Contains(key, "incident"), strings.Contains(key, "response"):
		return CategoryResponder
	default:
		return CategoryTrainer
	}
}

type VolunteerApplication struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	Skills       []string        `json:"skills,omitempty"`
	Availability string          `json:"availability,omitempty"`
	Status       VolunteerStatus `json:"status"`
	AppliedAt    time.Time       `json:"applied_at"`
}

// Transition returns the status the application should be persisted with.
// Any jump between known statuses is legal; out-of-enum targets are
// rejected with ErrUnknownStatus.
func (v *VolunteerApplication) Transition(target VolunteerStatus) (VolunteerStatus, error) {
	if !target.Valid() {
		return v.Status, ErrUnknownStatus
	}
	return target, nil
}
