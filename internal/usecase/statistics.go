package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// StatisticsUseCase реализует бизнес-логику для статистики
type StatisticsUseCase struct {
	statsRepo repository.StatisticsRepository
	eventRepo repository.EventRepository
	duration  time.Duration
	now       func() time.Time
}

// NewStatisticsUseCase создает новый usecase для статистики
func NewStatisticsUseCase(
	statsRepo repository.StatisticsRepository,
	eventRepo repository.EventRepository,
	duration time.Duration,
) *StatisticsUseCase {
	return &StatisticsUseCase{
		statsRepo: statsRepo,
		eventRepo: eventRepo,
		duration:  duration,
		now:       time.Now,
	}
}

// GetStatistics возвращает сводку для панели администратора.
// Счётчики по статусам считаются по дате мероприятия, а не по сохранённому статусу.
func (uc *StatisticsUseCase) GetStatistics(ctx context.Context) (*entity.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	events, err := uc.eventRepo.ListByEventDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	buckets := entity.GroupEvents(events, uc.now(), uc.duration)
	stats.UpcomingEvents = len(buckets.Upcoming)
	stats.OngoingEvents = len(buckets.Ongoing)
	stats.PastEvents = len(buckets.Past)

	return stats, nil
}
