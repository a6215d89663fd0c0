package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

func newTestRepository(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRepository(client), mr
}

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	session := &entity.VisitorSession{
		ID:        "abc",
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}

	require.NoError(t, repo.Save(ctx, session, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL(sessionKeyPrefix+"abc"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.False(t, got.HeroAnimationPlayed)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "abc"), domainErrors.ErrNotFound)
}

func TestSessionRepository_Expires(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.VisitorSession{ID: "short"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "short")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}
