package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"movies/internal/domain/movie"
	"movies/internal/domain/review"
	"movies/internal/domain/session"
	"movies/internal/search"
)

// ReviewLister reads reviews submitted during this process's lifetime.
type ReviewLister interface {
	ListByMovie(ctx context.Context, movieID string) ([]review.Review, error)
}

type MovieSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Year          int      `json:"year"`
	Genres        []string `json:"genres"`
	PosterRef     string   `json:"poster_ref"`
	AverageRating float64  `json:"average_rating"`
}

type MovieDetails struct {
	movie.Movie
	AverageRating float64 `json:"average_rating"`
	Bookmarked    bool    `json:"bookmarked"`
}

type MovieUsecase interface {
	List(ctx context.Context) ([]MovieSummary, error)
	Search(ctx context.Context, query string) ([]MovieSummary, error)
	Details(ctx context.Context, movieID string) (MovieDetails, error)
	SessionDetails(ctx context.Context, sessionID uuid.UUID, movieID string) (MovieDetails, error)
	ToggleBookmark(ctx context.Context, sessionID uuid.UUID, movieID string) (bool, error)
	Saved(ctx context.Context, sessionID uuid.UUID) ([]MovieSummary, error)
}

type Movies struct {
	store   *SessionStore
	catalog *movie.Catalog
	reviews ReviewLister
}

func NewMovieUsecase(store *SessionStore, catalog *movie.Catalog, reviews ReviewLister) *Movies {
	return &Movies{store: store, catalog: catalog, reviews: reviews}
}

func (u *Movies) List(ctx context.Context) ([]MovieSummary, error) {
	items := u.catalog.List()
	out := make([]MovieSummary, 0, len(items))
	for _, m := range items {
		all, err := u.allReviews(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(m, all))
	}
	return out, nil
}

// Search ranks the catalogue against query. A query with nothing
// searchable in it is invalid input.
func (u *Movies) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	q := search.ProcessQuery(query)
	if q.Normalized == "" {
		return nil, ErrInvalidInput
	}

	all, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]MovieSummary, len(all))
	docs := make([]search.Document, 0, len(all))
	for _, m := range u.catalog.List() {
		sum := summaryFor(all, m.ID)
		byID[m.ID] = sum
		docs = append(docs, search.Document{
			ID:            m.ID,
			Title:         m.Title,
			Story:         m.Story,
			Director:      m.Director,
			Stars:         m.Stars,
			Genres:        m.Genres,
			AverageRating: sum.AverageRating,
		})
	}

	ranked := search.Rank(docs, q.Variants)
	out := make([]MovieSummary, 0, len(ranked))
	for _, d := range ranked {
		out = append(out, byID[d.ID])
	}
	return out, nil
}

func summaryFor(items []MovieSummary, id string) MovieSummary {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	return MovieSummary{ID: id}
}

func (u *Movies) Details(ctx context.Context, movieID string) (MovieDetails, error) {
	m, err := u.catalog.Get(movieID)
	if err != nil {
		return MovieDetails{}, fmt.Errorf("%w: %w", ErrNotFound, ErrMovieNotFound)
	}
	all, err := u.allReviews(ctx, m)
	if err != nil {
		return MovieDetails{}, err
	}
	m.Reviews = all
	return MovieDetails{Movie: m, AverageRating: movie.AverageRating(all)}, nil
}

func (u *Movies) SessionDetails(ctx context.Context, sessionID uuid.UUID, movieID string) (MovieDetails, error) {
	snap, err := u.store.load(ctx, sessionID)
	if err != nil {
		return MovieDetails{}, err
	}
	d, err := u.Details(ctx, movieID)
	if err != nil {
		return MovieDetails{}, err
	}
	d.Bookmarked = snap.Bookmarked(movieID)
	return d, nil
}

func (u *Movies) ToggleBookmark(ctx context.Context, sessionID uuid.UUID, movieID string) (bool, error) {
	if !u.catalog.Exists(movieID) {
		return false, fmt.Errorf("%w: %w", ErrNotFound, ErrMovieNotFound)
	}
	var saved bool
	_, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		saved = s.ToggleBookmark(movieID)
		return nil
	})
	if err != nil {
		return false, err
	}
	u.store.publish(EventBookmarkToggled, sessionID, map[string]any{"movie_id": movieID, "bookmarked": saved})
	return saved, nil
}

// Saved lists bookmarked movies in the order they were saved.
func (u *Movies) Saved(ctx context.Context, sessionID uuid.UUID) ([]MovieSummary, error) {
	snap, err := u.store.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]MovieSummary, 0, len(snap.Bookmarks))
	for _, id := range snap.Bookmarks {
		m, err := u.catalog.Get(id)
		if err != nil {
			continue
		}
		all, err := u.allReviews(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(m, all))
	}
	return out, nil
}

func (u *Movies) allReviews(ctx context.Context, m movie.Movie) ([]review.Review, error) {
	all := append([]review.Review(nil), m.Reviews...)
	if u.reviews == nil {
		return all, nil
	}
	extra, err := u.reviews.ListByMovie(ctx, m.ID)
	if err != nil {
		u.store.logger.Printf("Review list failed | movie=%s err=%v", m.ID, err)
		return nil, ErrInternal
	}
	return append(all, extra...), nil
}

func summarize(m movie.Movie, reviews []review.Review) MovieSummary {
	return MovieSummary{
		ID:            m.ID,
		Title:         m.Title,
		Year:          m.Year,
		Genres:        m.Genres,
		PosterRef:     m.PosterRef,
		AverageRating: movie.AverageRating(reviews),
	}
}
