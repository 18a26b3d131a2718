package postgres

import (
	"context"
	"database/sql"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	query := `SELECT id, name, role, email, is_active, bio, linkedin, twitter, image_url
	          FROM team_members ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.IsActive,
			&m.Bio, &m.LinkedIn, &m.Twitter, &m.ImageURL); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *teamRepository) GetByID(ctx context.Context, id int32) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	query := `SELECT id, name, role, email, is_active, bio, linkedin, twitter, image_url
	          FROM team_members WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Role, &m.Email,
		&m.IsActive, &m.Bio, &m.LinkedIn, &m.Twitter, &m.ImageURL)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *teamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `INSERT INTO team_members (name, role, email, is_active, bio, linkedin, twitter, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	logger.DatabaseCall("INSERT", "team_members", "name", member.Name)
	err := r.db.QueryRowContext(ctx, query, member.Name, member.Role, member.Email,
		member.IsActive, member.Bio, member.LinkedIn, member.Twitter, member.ImageURL).Scan(&member.ID)
	logger.DatabaseResult("INSERT", 1, err, "id", member.ID)
	return err
}

func (r *teamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	query := `UPDATE team_members SET name = $1, role = $2, email = $3, is_active = $4,
	          bio = $5, linkedin = $6, twitter = $7, image_url = $8 WHERE id = $9`
	logger.DatabaseCall("UPDATE", "team_members", "id", member.ID)
	_, err := r.db.ExecContext(ctx, query, member.Name, member.Role, member.Email,
		member.IsActive, member.Bio, member.LinkedIn, member.Twitter, member.ImageURL, member.ID)
	logger.DatabaseResult("UPDATE", 1, err, "id", member.ID)
	return err
}

func (r *teamRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM team_members WHERE id = $1`
	logger.DatabaseCall("DELETE", "team_members", "id", id)
	_, err := r.db.ExecContext(ctx, query, id)
	logger.DatabaseResult("DELETE", 1, err, "id", id)
	return err
}
