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

const eventColumns = `id, title, description, event_date, status, image_url, created_at, updated_at`

// EventRepository реализует repository.EventRepository для PostgreSQL
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository создает новый репозиторий мероприятий
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create создает мероприятие
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO events (id, title, description, event_date, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := conn.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.EventDate,
		string(event.StoredStatus),
		event.ImageURL,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// Update обновляет мероприятие
func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE events
		SET title = $2, description = $3, event_date = $4, status = $5, image_url = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := conn.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.EventDate,
		string(event.StoredStatus),
		event.ImageURL,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// Delete удаляет мероприятие
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

// GetByID возвращает мероприятие по ID
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*entity.Event, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(conn.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// ListByEventDate возвращает мероприятия от новых к старым по дате проведения
func (r *EventRepository) ListByEventDate(ctx context.Context) ([]*entity.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date DESC, id`)
}

// ListByCreatedAt возвращает мероприятия от новых к старым по дате создания
func (r *EventRepository) ListByCreatedAt(ctx context.Context) ([]*entity.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC, id`)
}

func (r *EventRepository) list(ctx context.Context, query string) ([]*entity.Event, error) {
	conn := getConn(ctx, r.pool)

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*entity.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var (
		event  entity.Event
		status string
	)
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&status,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.StoredStatus = entity.EventStatus(status)
	return &event, nil
}
