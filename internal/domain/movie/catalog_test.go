package movie

import (
	"errors"
	"testing"

	"movies/internal/domain/review"
)

func TestCatalog_ListAndGet(t *testing.T) {
	c := DefaultCatalog()
	items := c.List()
	if len(items) == 0 {
		t.Fatalf("expected seeded movies")
	}

	m, err := c.Get(items[0].ID)
	if err != nil {
		t.Fatalf("Get(%q): %v", items[0].ID, err)
	}
	if m.Title != items[0].Title {
		t.Fatalf("title mismatch %q vs %q", m.Title, items[0].Title)
	}

	if _, err := c.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	m, _ := c.Get("shawshank")
	m.Stars[0] = "changed"
	m.Reviews = append(m.Reviews, review.Review{Text: "x"})

	again, _ := c.Get("shawshank")
	if again.Stars[0] == "changed" {
		t.Fatalf("catalog mutated through returned slice")
	}
	if len(again.Reviews) != 2 {
		t.Fatalf("reviews = %d, want 2", len(again.Reviews))
	}
}

func TestNewCatalog_SkipsDuplicateIDs(t *testing.T) {
	c := NewCatalog([]Movie{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}})
	if len(c.List()) != 1 {
		t.Fatalf("duplicate id kept")
	}
	m, _ := c.Get("a")
	if m.Title != "first" {
		t.Fatalf("expected first entry to win, got %q", m.Title)
	}
}

func TestAverageRating(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Fatalf("empty average = %v", got)
	}
	got := AverageRating([]review.Review{{Rating: 5}, {Rating: 4}, {Rating: 0}, {Rating: 4}})
	if got != 4.3 {
		t.Fatalf("average = %v, want 4.3", got)
	}
}
