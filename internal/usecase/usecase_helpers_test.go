package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/movie"
	"movies/internal/domain/session"
	"movies/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(evt Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type failingSessionRepo struct {
	session.Repository
	saveErr error
}

func (r failingSessionRepo) Save(ctx context.Context, s session.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.Repository.Save(ctx, s)
}

type testEnv struct {
	repo     *repository.MemorySessionRepository
	reviews  *repository.MemoryReviewRepository
	pub      *recordingPublisher
	store    *SessionStore
	sessions *Sessions
	signIn   *SignIn
	profile  *Profile
	review   *Review
	movies   *Movies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := repository.NewMemorySessionRepository()
	reviews := repository.NewMemoryReviewRepository()
	pub := &recordingPublisher{}
	store := NewSessionStore(repo, pub, log.New(io.Discard, "", 0))
	catalog := movie.DefaultCatalog()
	return &testEnv{
		repo:     repo,
		reviews:  reviews,
		pub:      pub,
		store:    store,
		sessions: NewSessionUsecase(store, time.Hour),
		signIn:   NewSignInUsecase(store),
		profile:  NewProfileUsecase(store),
		review:   NewReviewUsecase(store, catalog, reviews),
		movies:   NewMovieUsecase(store, catalog, reviews),
	}
}

func (e *testEnv) open(t *testing.T) uuid.UUID {
	t.Helper()
	snap, err := e.sessions.Open(context.Background())
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return snap.ID
}

func mustErrIs(t *testing.T, err error, targets ...error) {
	t.Helper()
	for _, target := range targets {
		if !errors.Is(err, target) {
			t.Fatalf("expected %v, got %v", target, err)
		}
	}
}
