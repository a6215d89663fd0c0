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
	"github.com/https-dhanesh/itesa-website/internal/metrics"
	"github.com/https-dhanesh/itesa-website/internal/notify"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// ContactInput данные формы обратной связи
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactUseCase реализует бизнес-логику обратной связи
type ContactUseCase struct {
	contactRepo repository.ContactRepository
	notifier    Notifier
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewContactUseCase создает новый usecase для обратной связи
func NewContactUseCase(
	contactRepo repository.ContactRepository,
	notifier Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit сохраняет сообщение и уведомляет администраторов
func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.ContactSubmission, error) {
	submission := &entity.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: uc.now(),
	}

	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		return nil, domainErrors.InvalidInput("name, email and message are required")
	}

	if err := uc.contactRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}

	uc.metrics.ContactSubmitted()

	// Сообщение уже сохранено, ошибка доставки уведомления не отменяет запрос
	if err := uc.notifier.Publish(ctx, notify.TypeContactSubmitted, submission); err != nil {
		uc.logger.Warn("failed to publish contact notification",
			zap.String("submission_id", submission.ID),
			zap.Error(err),
		)
	}

	uc.logger.Info("contact submission received", zap.String("submission_id", submission.ID))

	return submission, nil
}

// ListSubmissions возвращает сообщения от новых к старым
func (uc *ContactUseCase) ListSubmissions(ctx context.Context) ([]*entity.ContactSubmission, error) {
	submissions, err := uc.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
