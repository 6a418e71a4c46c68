package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
)

// SessionStore serialises read-modify-write cycles per session id on top
// of a session.Repository and publishes resulting events. All use cases
// touching the same sessions must share one SessionStore.
type SessionStore struct {
	repo   session.Repository
	locks  *keyedMutex
	pub    Publisher
	logger *log.Logger
	now    func() time.Time
}

func NewSessionStore(repo session.Repository, pub Publisher, logger *log.Logger) *SessionStore {
	if pub == nil {
		pub = nopPublisher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SessionStore{
		repo:   repo,
		locks:  newKeyedMutex(),
		pub:    pub,
		logger: logger,
		now:    time.Now,
	}
}

func (s *SessionStore) load(ctx context.Context, id uuid.UUID) (session.Snapshot, error) {
	snap, err := s.repo.Get(ctx, id)
	if err != nil {
		return session.Snapshot{}, s.mapRepoError(id, err)
	}
	return snap, nil
}

// update loads the snapshot, applies fn and saves it. fn errors abort the
// update without saving.
func (s *SessionStore) update(ctx context.Context, id uuid.UUID, fn func(*session.Snapshot) error) (session.Snapshot, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	snap, err := s.repo.Get(ctx, id)
	if err != nil {
		return session.Snapshot{}, s.mapRepoError(id, err)
	}
	if err := fn(&snap); err != nil {
		return session.Snapshot{}, err
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.logger.Printf("Session save failed | session=%s err=%v", id, err)
		return session.Snapshot{}, ErrInternal
	}
	return snap, nil
}

func (s *SessionStore) publish(typ string, id uuid.UUID, data any) {
	s.pub.Publish(newEvent(typ, id, data, s.now()))
}

func (s *SessionStore) mapRepoError(id uuid.UUID, err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, ErrSessionNotFound)
	}
	s.logger.Printf("Session load failed | session=%s err=%v", id, err)
	return ErrInternal
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*refMutex)}
}

func (k *keyedMutex) Lock(id uuid.UUID) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &refMutex{}
		k.locks[id] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
