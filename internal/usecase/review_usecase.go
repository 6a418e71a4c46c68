package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"movies/internal/domain/movie"
	"movies/internal/domain/review"
	"movies/internal/domain/session"
)

// ReviewSink receives submitted drafts. Storage behind it is not this
// service's concern.
type ReviewSink interface {
	Add(ctx context.Context, r review.Review) error
}

type ComposerView struct {
	MovieID string                 `json:"movie_id"`
	Draft   review.Draft           `json:"draft"`
	Stars   [review.MaxRating]bool `json:"stars"`
}

type ReviewUsecase interface {
	Open(ctx context.Context, sessionID uuid.UUID, movieID string) (ComposerView, error)
	Get(ctx context.Context, sessionID uuid.UUID) (ComposerView, error)
	SetText(ctx context.Context, sessionID uuid.UUID, text string) (ComposerView, error)
	SetRating(ctx context.Context, sessionID uuid.UUID, rating int) (ComposerView, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (review.Review, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
}

type Review struct {
	store   *SessionStore
	catalog *movie.Catalog
	sink    ReviewSink
}

func NewReviewUsecase(store *SessionStore, catalog *movie.Catalog, sink ReviewSink) *Review {
	return &Review{store: store, catalog: catalog, sink: sink}
}

func NewComposerView(c session.Composer) ComposerView {
	return ComposerView{
		MovieID: c.MovieID,
		Draft:   c.Draft,
		Stars:   review.RestoreDraftState(c.Draft).Stars(),
	}
}

// Open starts an empty draft for movieID, replacing any open composer.
func (u *Review) Open(ctx context.Context, sessionID uuid.UUID, movieID string) (ComposerView, error) {
	if !u.catalog.Exists(movieID) {
		return ComposerView{}, fmt.Errorf("%w: %w", ErrNotFound, ErrMovieNotFound)
	}
	snap, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		s.Composer = &session.Composer{MovieID: movieID, Draft: review.NewDraftState().Draft()}
		return nil
	})
	if err != nil {
		return ComposerView{}, err
	}
	v := NewComposerView(*snap.Composer)
	u.store.publish(EventReviewOpened, sessionID, v)
	return v, nil
}

func (u *Review) Get(ctx context.Context, sessionID uuid.UUID) (ComposerView, error) {
	snap, err := u.store.load(ctx, sessionID)
	if err != nil {
		return ComposerView{}, err
	}
	if snap.Composer == nil {
		return ComposerView{}, fmt.Errorf("%w: %w", ErrConflict, ErrComposerClosed)
	}
	return NewComposerView(*snap.Composer), nil
}

func (u *Review) SetText(ctx context.Context, sessionID uuid.UUID, text string) (ComposerView, error) {
	return u.edit(ctx, sessionID, func(d *review.DraftState) { d.SetText(text) })
}

// SetRating stores rating as given; range checks belong to the caller.
func (u *Review) SetRating(ctx context.Context, sessionID uuid.UUID, rating int) (ComposerView, error) {
	return u.edit(ctx, sessionID, func(d *review.DraftState) { d.SetRating(rating) })
}

// Submit closes the composer and then hands the draft to the sink. A sink
// failure reopens the composer with the same draft. There is no duplicate
// guard: every submit is independent.
func (u *Review) Submit(ctx context.Context, sessionID uuid.UUID) (review.Review, error) {
	var (
		out    review.Review
		closed session.Composer
	)
	_, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		if s.Composer == nil {
			return fmt.Errorf("%w: %w", ErrConflict, ErrComposerClosed)
		}
		closed = *s.Composer
		d := review.RestoreDraftState(s.Composer.Draft).Submit()
		out = review.Review{
			MovieID:     s.Composer.MovieID,
			Text:        d.Text,
			Rating:      d.Rating,
			SubmittedAt: u.store.now().UTC(),
		}
		s.Composer = nil
		return nil
	})
	if err != nil {
		return review.Review{}, err
	}
	if u.sink != nil {
		if err := u.sink.Add(ctx, out); err != nil {
			u.store.logger.Printf("Review sink failed | session=%s movie=%s err=%v", sessionID, out.MovieID, err)
			u.reopen(ctx, sessionID, closed)
			return review.Review{}, ErrInternal
		}
	}
	u.store.logger.Printf("Review submitted | session=%s movie=%s rating=%d", sessionID, out.MovieID, out.Rating)
	u.store.publish(EventReviewSubmitted, sessionID, out)
	return out, nil
}

// reopen restores c unless another composer was opened in the meantime.
func (u *Review) reopen(ctx context.Context, sessionID uuid.UUID, c session.Composer) {
	_, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		if s.Composer == nil {
			s.Composer = &c
		}
		return nil
	})
	if err != nil {
		u.store.logger.Printf("Review composer restore failed | session=%s movie=%s err=%v", sessionID, c.MovieID, err)
	}
}

func (u *Review) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	_, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		if s.Composer == nil {
			return fmt.Errorf("%w: %w", ErrConflict, ErrComposerClosed)
		}
		s.Composer = nil
		return nil
	})
	if err != nil {
		return err
	}
	u.store.publish(EventReviewCancelled, sessionID, nil)
	return nil
}

func (u *Review) edit(ctx context.Context, sessionID uuid.UUID, fn func(*review.DraftState)) (ComposerView, error) {
	snap, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		if s.Composer == nil {
			return fmt.Errorf("%w: %w", ErrConflict, ErrComposerClosed)
		}
		d := review.RestoreDraftState(s.Composer.Draft)
		fn(d)
		s.Composer.Draft = d.Draft()
		return nil
	})
	if err != nil {
		return ComposerView{}, err
	}
	return NewComposerView(*snap.Composer), nil
}
