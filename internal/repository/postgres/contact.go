package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

// ContactRepository реализует repository.ContactRepository для PostgreSQL
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository создает новый репозиторий обращений
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Create сохраняет обращение из формы обратной связи
func (r *ContactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO contact_submissions (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := conn.Exec(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Message,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}

	return nil
}

// List возвращает обращения от новых к старым
func (r *ContactRepository) List(ctx context.Context) ([]*entity.ContactSubmission, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT id, name, email, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, id
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*entity.ContactSubmission, 0)
	for rows.Next() {
		var s entity.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact submissions: %w", err)
	}

	return submissions, nil
}
