package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
)

func TestMemorySessionRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	s := session.New(time.Now(), time.Hour)
	s.ToggleBookmark("shawshank")
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Bookmarked("shawshank") {
		t.Fatalf("bookmark lost after round trip")
	}

	got.ToggleBookmark("dune-part-two")
	again, _ := repo.Get(ctx, s.ID)
	if again.Bookmarked("dune-part-two") {
		t.Fatalf("store shares state with callers")
	}

	if err := repo.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, s.ID); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, s.ID); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)
	repo := NewMemorySessionRepository()
	repo.now = func() time.Time { return now }

	live := session.New(now, time.Hour)
	stale := session.New(now.Add(-2*time.Hour), time.Hour)
	_ = repo.Save(ctx, live)
	_ = repo.Save(ctx, stale)

	if _, err := repo.Get(ctx, stale.ID); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expired session returned, err=%v", err)
	}

	_ = repo.Save(ctx, stale)
	n, err := repo.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 1 || repo.Len() != 1 {
		t.Fatalf("purged=%d remaining=%d, want 1 and 1", n, repo.Len())
	}
}

type fakeJSONCache struct {
	items map[string][]byte
	ttls  map[string]time.Duration
	err   error
}

func newFakeJSONCache() *fakeJSONCache {
	return &fakeJSONCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *fakeJSONCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeJSONCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	if c.err != nil {
		return c.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	c.ttls[key] = ttl
	return nil
}

func (c *fakeJSONCache) Delete(_ context.Context, key string) error {
	delete(c.items, key)
	delete(c.ttls, key)
	return nil
}

func TestRedisSessionRepository_TTLFollowsSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)
	cache := newFakeJSONCache()
	repo := NewRedisSessionRepository(cache)
	repo.now = func() time.Time { return now }

	s := session.New(now, 30*time.Minute)
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	key := SessionKey(s.ID)
	if cache.ttls[key] != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", cache.ttls[key])
	}

	got, err := repo.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != s.ID || got.Profile.Committed != s.Profile.Committed {
		t.Fatalf("round trip mismatch")
	}

	repo.now = func() time.Time { return now.Add(time.Hour) }
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save expired: %v", err)
	}
	if _, ok := cache.items[key]; ok {
		t.Fatalf("expired snapshot should be removed, not stored")
	}
}

func TestRedisSessionRepository_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisSessionRepository(newFakeJSONCache())
	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestRedisSessionRepository_CacheErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	cache := newFakeJSONCache()
	cache.err = boom
	repo := NewRedisSessionRepository(cache)
	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, boom) {
		t.Fatalf("expected cache error, got %v", err)
	}
}
