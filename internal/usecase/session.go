package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// SessionUseCase управляет сессиями посетителей.
// Сессия хранит флаг проигранной анимации главного экрана.
type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewSessionUseCase создает новый usecase для сессий
func NewSessionUseCase(sessionRepo repository.SessionRepository, ttl time.Duration, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
	}
}

// StartSession создает сессию, анимация еще не проиграна
func (uc *SessionUseCase) StartSession(ctx context.Context) (*entity.VisitorSession, error) {
	now := uc.now()
	session := &entity.VisitorSession{
		ID:                  uuid.New().String(),
		HeroAnimationPlayed: false,
		CreatedAt:           now,
		ExpiresAt:           now.Add(uc.ttl),
	}

	if err := uc.sessionRepo.Save(ctx, session, uc.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	uc.logger.Debug("visitor session started", zap.String("session_id", session.ID))

	return session, nil
}

// GetSession возвращает сессию по ID
func (uc *SessionUseCase) GetSession(ctx context.Context, sessionID string) (*entity.VisitorSession, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionNotFoundOr(err)
	}
	return session, nil
}

// MarkHeroPlayed отмечает анимацию как проигранную, срок жизни сессии не продлевается
func (uc *SessionUseCase) MarkHeroPlayed(ctx context.Context, sessionID string) (*entity.VisitorSession, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionNotFoundOr(err)
	}

	if session.HeroAnimationPlayed {
		return session, nil
	}

	remaining := session.ExpiresAt.Sub(uc.now())
	if remaining <= 0 {
		return nil, sessionNotFoundOr(domainErrors.ErrNotFound)
	}

	session.HeroAnimationPlayed = true
	if err := uc.sessionRepo.Save(ctx, session, remaining); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// EndSession удаляет сессию
func (uc *SessionUseCase) EndSession(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		return sessionNotFoundOr(err)
	}
	return nil
}

func sessionNotFoundOr(err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.NewDomainError(
			domainErrors.CodeSessionNotFound,
			"session not found or expired",
			domainErrors.ErrSessionNotFound,
		)
	}
	return err
}
