package repository

import (
	"context"
	"sync"

	"movies/internal/domain/review"
)

type ReviewRepository interface {
	Add(ctx context.Context, r review.Review) error
	ListByMovie(ctx context.Context, movieID string) ([]review.Review, error)
}

// MemoryReviewRepository holds submitted reviews for the lifetime of the
// process only.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	byMovie map[string][]review.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{byMovie: make(map[string][]review.Review)}
}

func (r *MemoryReviewRepository) Add(ctx context.Context, rv review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byMovie[rv.MovieID] = append(r.byMovie[rv.MovieID], rv)
	return nil
}

func (r *MemoryReviewRepository) ListByMovie(ctx context.Context, movieID string) ([]review.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.byMovie[movieID]
	out := make([]review.Review, len(items))
	copy(out, items)
	return out, nil
}
