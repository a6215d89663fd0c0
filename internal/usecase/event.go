package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// EventInput данные формы мероприятия
type EventInput struct {
	Title       string
	Description string
	EventDate   string
	Status      string
	ImageURL    string
}

// EventUseCase реализует бизнес-логику для мероприятий
type EventUseCase struct {
	eventRepo repository.EventRepository
	duration  time.Duration
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventUseCase создает новый usecase для мероприятий
func NewEventUseCase(
	eventRepo repository.EventRepository,
	duration time.Duration,
	location *time.Location,
	logger *zap.Logger,
) *EventUseCase {
	if location == nil {
		location = time.UTC
	}
	return &EventUseCase{
		eventRepo: eventRepo,
		duration:  duration,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

// Duration возвращает окно проведения мероприятия
func (uc *EventUseCase) Duration() time.Duration {
	return uc.duration
}

// Now возвращает текущее время usecase
func (uc *EventUseCase) Now() time.Time {
	return uc.now()
}

// GetEventBuckets возвращает мероприятия, разложенные по статусам на текущий момент
func (uc *EventUseCase) GetEventBuckets(ctx context.Context) (entity.EventBuckets, error) {
	events, err := uc.eventRepo.ListByEventDate(ctx)
	if err != nil {
		return entity.EventBuckets{}, fmt.Errorf("failed to list events: %w", err)
	}

	return entity.GroupEvents(events, uc.now(), uc.duration), nil
}

// ListEvents возвращает мероприятия для календаря, от новых к старым
func (uc *EventUseCase) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := uc.eventRepo.ListByEventDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListForAdmin возвращает мероприятия с вычисленным статусом в порядке создания
func (uc *EventUseCase) ListForAdmin(ctx context.Context) ([]entity.ClassifiedEvent, error) {
	events, err := uc.eventRepo.ListByCreatedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	now := uc.now()
	result := make([]entity.ClassifiedEvent, 0, len(events))
	for _, e := range events {
		result = append(result, entity.ClassifiedEvent{Event: e, Status: e.Status(now, uc.duration)})
	}

	return result, nil
}

// GetEvent возвращает мероприятие с вычисленным статусом
func (uc *EventUseCase) GetEvent(ctx context.Context, eventID string) (*entity.ClassifiedEvent, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, "event not found")
	}

	return &entity.ClassifiedEvent{Event: event, Status: event.Status(uc.now(), uc.duration)}, nil
}

// CreateEvent создает мероприятие
func (uc *EventUseCase) CreateEvent(ctx context.Context, input EventInput) (*entity.Event, error) {
	event, err := uc.buildEvent(input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	event.ID = uuid.New().String()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	uc.logger.Info("event created",
		zap.String("event_id", event.ID),
		zap.String("title", event.Title),
		zap.Time("event_date", event.EventDate),
	)

	return event, nil
}

// UpdateEvent обновляет мероприятие
func (uc *EventUseCase) UpdateEvent(ctx context.Context, eventID string, input EventInput) (*entity.Event, error) {
	existing, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, "event not found")
	}

	event, err := uc.buildEvent(input)
	if err != nil {
		return nil, err
	}

	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = uc.now()

	if err := uc.eventRepo.Update(ctx, event); err != nil {
		return nil, notFoundOr(err, "event not found")
	}

	uc.logger.Info("event updated", zap.String("event_id", event.ID))

	return event, nil
}

// DeleteEvent удаляет мероприятие
func (uc *EventUseCase) DeleteEvent(ctx context.Context, eventID string) error {
	if err := uc.eventRepo.Delete(ctx, eventID); err != nil {
		return notFoundOr(err, "event not found")
	}

	uc.logger.Info("event deleted", zap.String("event_id", eventID))
	return nil
}

func (uc *EventUseCase) buildEvent(input EventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainErrors.InvalidInput("title is required")
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainErrors.InvalidInput("description is required")
	}

	eventDate, ok := entity.ParseEventDate(input.EventDate, uc.location)
	if !ok {
		return nil, domainErrors.InvalidInput("event_date must be RFC3339 or YYYY-MM-DDTHH:MM")
	}

	status := entity.EventStatusUpcoming
	if input.Status != "" {
		status = entity.EventStatus(input.Status)
		if !status.IsValid() {
			return nil, domainErrors.InvalidInput("status must be one of upcoming, ongoing, past")
		}
	}

	return &entity.Event{
		Title:        title,
		Description:  description,
		EventDate:    eventDate,
		StoredStatus: status,
		ImageURL:     optionalString(input.ImageURL),
	}, nil
}
