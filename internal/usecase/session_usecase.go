package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
)

type SessionUsecase interface {
	Open(ctx context.Context) (session.Snapshot, error)
	Get(ctx context.Context, id uuid.UUID) (session.Snapshot, error)
	SignOut(ctx context.Context, id uuid.UUID) error
}

type Sessions struct {
	store *SessionStore
	ttl   time.Duration
}

func NewSessionUsecase(store *SessionStore, ttl time.Duration) *Sessions {
	return &Sessions{store: store, ttl: ttl}
}

func (u *Sessions) Open(ctx context.Context) (session.Snapshot, error) {
	snap := session.New(u.store.now(), u.ttl)
	if err := u.store.repo.Save(ctx, snap); err != nil {
		u.store.logger.Printf("Session open failed | err=%v", err)
		return session.Snapshot{}, ErrInternal
	}
	u.store.logger.Printf("Session opened | session=%s expires_at=%s", snap.ID, snap.ExpiresAt.Format(time.RFC3339))
	u.store.publish(EventSessionOpened, snap.ID, nil)
	return snap, nil
}

func (u *Sessions) Get(ctx context.Context, id uuid.UUID) (session.Snapshot, error) {
	return u.store.load(ctx, id)
}

// SignOut ends the session. It is only offered while the profile is not
// being edited.
func (u *Sessions) SignOut(ctx context.Context, id uuid.UUID) error {
	unlock := u.store.locks.Lock(id)
	defer unlock()

	snap, err := u.store.repo.Get(ctx, id)
	if err != nil {
		return u.store.mapRepoError(id, err)
	}
	if !snap.Profile.CanSignOut() {
		return fmt.Errorf("%w: %w", ErrConflict, ErrEditInProgress)
	}
	if err := u.store.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, ErrSessionNotFound)
		}
		u.store.logger.Printf("Session delete failed | session=%s err=%v", id, err)
		return ErrInternal
	}
	u.store.logger.Printf("Session closed | session=%s", id)
	u.store.publish(EventSessionClosed, id, nil)
	return nil
}
