package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
)

const sessionKeyPrefix = "session:"

type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisSessionRepository stores each snapshot under session:<id> with a TTL
// equal to the session's remaining lifetime, so Redis drops it on expiry.
type RedisSessionRepository struct {
	cache JSONCache
	now   func() time.Time
}

func NewRedisSessionRepository(cache JSONCache) *RedisSessionRepository {
	return &RedisSessionRepository{cache: cache, now: time.Now}
}

func SessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (r *RedisSessionRepository) Get(ctx context.Context, id uuid.UUID) (session.Snapshot, error) {
	var s session.Snapshot
	ok, err := r.cache.GetJSON(ctx, SessionKey(id), &s)
	if err != nil {
		return session.Snapshot{}, err
	}
	if !ok || s.Expired(r.now()) {
		return session.Snapshot{}, session.ErrNotFound
	}
	return s, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, s session.Snapshot) error {
	ttl := time.Duration(0)
	if !s.ExpiresAt.IsZero() {
		ttl = s.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return r.cache.Delete(ctx, SessionKey(s.ID))
		}
	}
	return r.cache.SetJSON(ctx, SessionKey(s.ID), s, ttl)
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return r.cache.Delete(ctx, SessionKey(id))
}

var _ session.Repository = (*RedisSessionRepository)(nil)
