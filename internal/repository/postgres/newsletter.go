package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

// NewsletterRepository реализует repository.NewsletterRepository для PostgreSQL
type NewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewNewsletterRepository создает новый репозиторий рассылок
func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{pool: pool}
}

// Create сохраняет выпуск рассылки
func (r *NewsletterRepository) Create(ctx context.Context, newsletter *entity.Newsletter) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO newsletters (id, subject, body, body_html, recipients, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := conn.Exec(ctx, query,
		newsletter.ID,
		newsletter.Subject,
		newsletter.Body,
		newsletter.BodyHTML,
		newsletter.Recipients,
		newsletter.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create newsletter: %w", err)
	}

	return nil
}

// List возвращает выпуски от новых к старым
func (r *NewsletterRepository) List(ctx context.Context) ([]*entity.Newsletter, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT id, subject, body, body_html, recipients, created_at
		FROM newsletters
		ORDER BY created_at DESC, id
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}
	defer rows.Close()

	newsletters := make([]*entity.Newsletter, 0)
	for rows.Next() {
		var n entity.Newsletter
		if err := rows.Scan(&n.ID, &n.Subject, &n.Body, &n.BodyHTML, &n.Recipients, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan newsletter: %w", err)
		}
		newsletters = append(newsletters, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate newsletters: %w", err)
	}

	return newsletters, nil
}

// Delete удаляет выпуск рассылки
func (r *NewsletterRepository) Delete(ctx context.Context, newsletterID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM newsletters WHERE id = $1`, newsletterID)
	if err != nil {
		return fmt.Errorf("failed to delete newsletter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}
