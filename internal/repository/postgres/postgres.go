package postgres

import (
	"database/sql"

	"digishield-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganisationApplicationRepository
	repository.VolunteerRepository
	repository.NewsletterRepository
	repository.MediaRepository
	repository.TeamRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                                db,
		OrganisationApplicationRepository: NewOrganisationApplicationRepository(db),
		VolunteerRepository:               NewVolunteerRepository(db),
		NewsletterRepository:              NewNewsletterRepository(db),
		MediaRepository:                   NewMediaRepository(db),
		TeamRepository:                    NewTeamRepository(db),
	}
}
