package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
)

// MemorySessionRepository keeps snapshots in process memory. Values are
// stored encoded so callers never share slices or pointers with the store.
type MemorySessionRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]memorySession
	now   func() time.Time
}

type memorySession struct {
	raw       []byte
	expiresAt time.Time
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		items: make(map[uuid.UUID]memorySession),
		now:   time.Now,
	}
}

func (r *MemorySessionRepository) Get(ctx context.Context, id uuid.UUID) (session.Snapshot, error) {
	r.mu.RLock()
	item, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return session.Snapshot{}, session.ErrNotFound
	}

	if !item.expiresAt.IsZero() && !r.now().Before(item.expiresAt) {
		r.mu.Lock()
		delete(r.items, id)
		r.mu.Unlock()
		return session.Snapshot{}, session.ErrNotFound
	}

	var s session.Snapshot
	if err := json.Unmarshal(item.raw, &s); err != nil {
		return session.Snapshot{}, err
	}
	return s, nil
}

func (r *MemorySessionRepository) Save(ctx context.Context, s session.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = memorySession{raw: b, expiresAt: s.ExpiresAt}
	return nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return session.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// PurgeExpired drops expired sessions and returns how many were removed.
func (r *MemorySessionRepository) PurgeExpired(ctx context.Context) (int, error) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, item := range r.items {
		if !item.expiresAt.IsZero() && !now.Before(item.expiresAt) {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *MemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ session.Repository = (*MemorySessionRepository)(nil)
