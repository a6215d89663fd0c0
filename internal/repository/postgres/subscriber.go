package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

// SubscriberRepository реализует repository.SubscriberRepository для PostgreSQL
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository создает новый репозиторий подписчиков
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// Create добавляет подписчика. Повторный email возвращает ErrAlreadySubscribed
func (r *SubscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO subscribers (id, email, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := conn.Exec(ctx, query, subscriber.ID, subscriber.Email, subscriber.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadySubscribed
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	return nil
}

// ExistsByEmail проверяет наличие подписки
func (r *SubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	conn := getConn(ctx, r.pool)

	var exists bool
	err := conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM subscribers WHERE lower(email) = lower($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check subscriber existence: %w", err)
	}

	return exists, nil
}

// List возвращает подписчиков от новых к старым
func (r *SubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	conn := getConn(ctx, r.pool)

	rows, err := conn.Query(ctx, `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]*entity.Subscriber, 0)
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subscribers, nil
}
