package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

const teamMemberColumns = `id, name, position, domain, image_url, linkedin_url, email, discord_url, created_at, updated_at`

// TeamMemberRepository реализует repository.TeamMemberRepository для PostgreSQL
type TeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMemberRepository создает новый репозиторий участников команды
func NewTeamMemberRepository(pool *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{pool: pool}
}

// Create добавляет участника команды
func (r *TeamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO team_members (id, name, position, domain, image_url, linkedin_url, email, discord_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := conn.Exec(ctx, query,
		member.ID,
		member.Name,
		string(member.Position),
		member.Domain,
		member.ImageURL,
		member.LinkedInURL,
		member.Email,
		member.DiscordURL,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	return nil
}

// Update обновляет участника команды
func (r *TeamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE team_members
		SET name = $2, position = $3, domain = $4, image_url = $5,
		    linkedin_url = $6, email = $7, discord_url = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := conn.Exec(ctx, query,
		member.ID,
		member.Name,
		string(member.Position),
		member.Domain,
		member.ImageURL,
		member.LinkedInURL,
		member.Email,
		member.DiscordURL,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// Delete удаляет участника команды
func (r *TeamMemberRepository) Delete(ctx context.Context, memberID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// GetByID возвращает участника по ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, memberID string) (*entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1`

	member, err := scanTeamMember(conn.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return member, nil
}

// List возвращает всех участников в порядке добавления
func (r *TeamMemberRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY created_at, id`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := make([]*entity.TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return members, nil
}

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var (
		member   entity.TeamMember
		position string
	)
	err := row.Scan(
		&member.ID,
		&member.Name,
		&position,
		&member.Domain,
		&member.ImageURL,
		&member.LinkedInURL,
		&member.Email,
		&member.DiscordURL,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Position = entity.Position(position)
	return &member, nil
}
