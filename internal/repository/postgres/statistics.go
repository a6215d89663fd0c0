package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

// StatisticsRepository реализует repository.StatisticsRepository для PostgreSQL
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository создает новый репозиторий статистики
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

// GetStatistics возвращает количество записей в таблицах сайта.
// Статусы мероприятий здесь не считаются, они вычисляются в usecase.
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*entity.Statistics, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM team_members),
			(SELECT COUNT(*) FROM contact_submissions),
			(SELECT COUNT(*) FROM subscribers),
			(SELECT COUNT(*) FROM newsletters)
	`

	var stats entity.Statistics
	err := conn.QueryRow(ctx, query).Scan(
		&stats.TotalEvents,
		&stats.TeamMembers,
		&stats.ContactSubmissions,
		&stats.Subscribers,
		&stats.Newsletters,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	return &stats, nil
}
