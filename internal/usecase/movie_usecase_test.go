package usecase

import (
	"context"
	"testing"
)

func TestMovies_ListIncludesAverages(t *testing.T) {
	env := newTestEnv(t)
	items, err := env.movies.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 movies, got %d", len(items))
	}
	if items[0].ID != "shawshank" || items[0].AverageRating != 4.5 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestMovies_DetailsMergesSubmittedReviews(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	ctx := context.Background()

	if _, err := env.review.Open(ctx, id, "a-star-is-born"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := env.review.SetRating(ctx, id, 2); err != nil {
		t.Fatalf("rating: %v", err)
	}
	if _, err := env.review.Submit(ctx, id); err != nil {
		t.Fatalf("submit: %v", err)
	}

	d, err := env.movies.Details(ctx, "a-star-is-born")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if len(d.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(d.Reviews))
	}
	if d.AverageRating != 3 {
		t.Fatalf("expected average 3, got %v", d.AverageRating)
	}

	_, err = env.movies.Details(ctx, "nope")
	mustErrIs(t, err, ErrNotFound, ErrMovieNotFound)
}

func TestMovies_Bookmarks(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	ctx := context.Background()

	saved, err := env.movies.ToggleBookmark(ctx, id, "dune-part-two")
	if err != nil || !saved {
		t.Fatalf("expected bookmark saved, got %v %v", saved, err)
	}
	if _, err := env.movies.ToggleBookmark(ctx, id, "shawshank"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	d, err := env.movies.SessionDetails(ctx, id, "dune-part-two")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if !d.Bookmarked {
		t.Fatalf("expected bookmarked flag")
	}

	items, err := env.movies.Saved(ctx, id)
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	if len(items) != 2 || items[0].ID != "dune-part-two" || items[1].ID != "shawshank" {
		t.Fatalf("unexpected saved list: %+v", items)
	}

	saved, err = env.movies.ToggleBookmark(ctx, id, "dune-part-two")
	if err != nil || saved {
		t.Fatalf("expected bookmark removed, got %v %v", saved, err)
	}

	_, err = env.movies.ToggleBookmark(ctx, id, "nope")
	mustErrIs(t, err, ErrNotFound, ErrMovieNotFound)
}

func TestMovies_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	items, err := env.movies.Search(ctx, "Sci-Fi")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) == 0 || items[0].ID != "dune-part-two" {
		t.Fatalf("expected dune-part-two first, got %+v", items)
	}

	items, err = env.movies.Search(ctx, "zzzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no hits, got %+v", items)
	}

	_, err = env.movies.Search(ctx, "  !! ")
	mustErrIs(t, err, ErrInvalidInput)
}
