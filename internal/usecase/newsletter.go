package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/content"
	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/metrics"
	"github.com/https-dhanesh/itesa-website/internal/notify"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// NewsletterRequest полезная нагрузка уведомления о рассылке
type NewsletterRequest struct {
	NewsletterID string   `json:"newsletter_id"`
	Subject      string   `json:"subject"`
	HTML         string   `json:"html"`
	Recipients   []string `json:"recipients"`
}

// NewsletterUseCase реализует бизнес-логику подписки и рассылки
type NewsletterUseCase struct {
	subscriberRepo repository.SubscriberRepository
	newsletterRepo repository.NewsletterRepository
	txManager      repository.TransactionManager
	notifier       Notifier
	metrics        *metrics.Metrics
	logger         *zap.Logger
	now            func() time.Time
}

// NewNewsletterUseCase создает новый usecase для рассылки
func NewNewsletterUseCase(
	subscriberRepo repository.SubscriberRepository,
	newsletterRepo repository.NewsletterRepository,
	txManager repository.TransactionManager,
	notifier Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *NewsletterUseCase {
	return &NewsletterUseCase{
		subscriberRepo: subscriberRepo,
		newsletterRepo: newsletterRepo,
		txManager:      txManager,
		notifier:       notifier,
		metrics:        m,
		logger:         logger,
		now:            time.Now,
	}
}

// Subscribe добавляет email в список рассылки
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, email string) (*entity.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domainErrors.InvalidInput("email is required")
	}

	exists, err := uc.subscriberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscriber: %w", err)
	}
	if exists {
		return nil, alreadySubscribed()
	}

	subscriber := &entity.Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: uc.now(),
	}

	if err := uc.subscriberRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadySubscribed) {
			return nil, alreadySubscribed()
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	uc.metrics.Subscribed()

	if err := uc.notifier.Publish(ctx, notify.TypeSubscriberAdded, subscriber); err != nil {
		uc.logger.Warn("failed to publish subscriber notification",
			zap.String("subscriber_id", subscriber.ID),
			zap.Error(err),
		)
	}

	uc.logger.Info("subscriber added", zap.String("subscriber_id", subscriber.ID))

	return subscriber, nil
}

// ListSubscribers возвращает подписчиков от новых к старым
func (uc *NewsletterUseCase) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	subscribers, err := uc.subscriberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

// SendNewsletter сохраняет выпуск и ставит рассылку в очередь для всех подписчиков
func (uc *NewsletterUseCase) SendNewsletter(ctx context.Context, subject, message string) (*entity.Newsletter, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, domainErrors.InvalidInput("subject and message are required")
	}

	html, err := content.RenderMarkdown(message)
	if err != nil {
		return nil, fmt.Errorf("failed to render newsletter: %w", err)
	}

	var (
		result     *entity.Newsletter
		recipients []string
	)

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		subscribers, err := uc.subscriberRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list subscribers: %w", err)
		}

		if len(subscribers) == 0 {
			return domainErrors.NewDomainError(
				domainErrors.CodeNoSubscribers,
				"there are no subscribers to send to",
				domainErrors.ErrNoSubscribers,
			)
		}

		newsletter := &entity.Newsletter{
			ID:         uuid.New().String(),
			Subject:    subject,
			Body:       message,
			BodyHTML:   html,
			Recipients: len(subscribers),
			CreatedAt:  uc.now(),
		}

		if err := uc.newsletterRepo.Create(ctx, newsletter); err != nil {
			return fmt.Errorf("failed to save newsletter: %w", err)
		}

		recipients = make([]string, 0, len(subscribers))
		for _, s := range subscribers {
			recipients = append(recipients, s.Email)
		}

		result = newsletter
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Запрос уходит только после коммита, при ошибке публикации выпуск удаляется
	request := NewsletterRequest{
		NewsletterID: result.ID,
		Subject:      result.Subject,
		HTML:         result.BodyHTML,
		Recipients:   recipients,
	}
	if err := uc.notifier.Publish(ctx, notify.TypeNewsletterRequested, request); err != nil {
		if delErr := uc.newsletterRepo.Delete(ctx, result.ID); delErr != nil {
			uc.logger.Error("failed to remove unsent newsletter",
				zap.String("newsletter_id", result.ID),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to publish newsletter: %w", err)
	}

	uc.metrics.NewsletterRequested()
	uc.logger.Info("newsletter requested",
		zap.String("newsletter_id", result.ID),
		zap.Int("recipients", result.Recipients),
	)

	return result, nil
}

// ListNewsletters возвращает отправленные выпуски от новых к старым
func (uc *NewsletterUseCase) ListNewsletters(ctx context.Context) ([]*entity.Newsletter, error) {
	newsletters, err := uc.newsletterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}
	return newsletters, nil
}

func alreadySubscribed() error {
	return domainErrors.NewDomainError(
		domainErrors.CodeAlreadySubscribed,
		"email is already subscribed",
		domainErrors.ErrAlreadySubscribed,
	)
}
