package domain

import "time"

type NewsletterSubscription struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
