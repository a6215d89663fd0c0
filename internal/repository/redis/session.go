package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

const sessionKeyPrefix = "itesa:session:"

// SessionRepository хранит сессии посетителей в Redis с TTL
type SessionRepository struct {
	client *goredis.Client
}

// NewSessionRepository создает новый репозиторий сессий
func NewSessionRepository(client *goredis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Save сохраняет сессию на время ttl
func (r *SessionRepository) Save(ctx context.Context, session *entity.VisitorSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get возвращает сессию по ID
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*entity.VisitorSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session entity.VisitorSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete удаляет сессию
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	deleted, err := r.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if deleted == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
