package session

import (
	"testing"
	"time"

	"movies/internal/domain/profile"
)

func TestNew_SeedsPlaceholderProfile(t *testing.T) {
	now := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
	s := New(now, time.Hour)

	if s.Profile.Committed != profile.Placeholder() {
		t.Fatalf("unexpected profile %+v", s.Profile.Committed)
	}
	if s.Profile.Mode != profile.ModeViewing {
		t.Fatalf("mode = %s, want viewing", s.Profile.Mode)
	}
	if s.Composer != nil {
		t.Fatalf("composer must start closed")
	}
	if !s.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expires_at = %v", s.ExpiresAt)
	}
	if s.Expired(now) || !s.Expired(now.Add(time.Hour)) {
		t.Fatalf("expiry boundary wrong")
	}
}

func TestSnapshot_ToggleBookmark(t *testing.T) {
	s := New(time.Now(), time.Hour)
	if !s.ToggleBookmark("dune-part-two") {
		t.Fatalf("first toggle should bookmark")
	}
	if !s.Bookmarked("dune-part-two") {
		t.Fatalf("expected bookmarked")
	}
	if s.ToggleBookmark("dune-part-two") {
		t.Fatalf("second toggle should clear")
	}
	if len(s.Bookmarks) != 0 {
		t.Fatalf("bookmarks = %v, want empty", s.Bookmarks)
	}
}
