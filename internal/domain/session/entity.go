package session

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/profile"
	"movies/internal/domain/review"
	"movies/internal/domain/signin"
)

// Composer is an open review composer bound to a movie.
type Composer struct {
	MovieID string       `json:"movie_id"`
	Draft   review.Draft `json:"draft"`
}

// Snapshot is all screen state owned by one client session.
type Snapshot struct {
	ID        uuid.UUID     `json:"id"`
	SignIn    signin.Form   `json:"sign_in"`
	Profile   profile.State `json:"profile"`
	Composer  *Composer     `json:"composer,omitempty"`
	Bookmarks []string      `json:"bookmarks"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

func New(now time.Time, ttl time.Duration) Snapshot {
	return Snapshot{
		ID:        uuid.New(),
		Profile:   *profile.NewState(profile.Placeholder()),
		Bookmarks: []string{},
		CreatedAt: now.UTC(),
		ExpiresAt: now.UTC().Add(ttl),
	}
}

func (s Snapshot) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s Snapshot) Bookmarked(movieID string) bool {
	return slices.Contains(s.Bookmarks, movieID)
}

// ToggleBookmark flips the bookmark flag and reports the new value.
func (s *Snapshot) ToggleBookmark(movieID string) bool {
	if i := slices.Index(s.Bookmarks, movieID); i >= 0 {
		s.Bookmarks = slices.Delete(s.Bookmarks, i, i+1)
		return false
	}
	s.Bookmarks = append(s.Bookmarks, movieID)
	return true
}
