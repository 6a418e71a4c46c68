package dto

import (
	"time"

	"github.com/google/uuid"

	"movies/internal/domain/session"
	"movies/internal/usecase"
)

type SessionResponse struct {
	ID        uuid.UUID             `json:"id"`
	SignIn    SignInFormResponse    `json:"sign_in"`
	Profile   usecase.ProfileView   `json:"profile"`
	Composer  *usecase.ComposerView `json:"composer,omitempty"`
	Bookmarks []string              `json:"bookmarks"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresAt time.Time             `json:"expires_at"`
}

func NewSessionResponse(s session.Snapshot) SessionResponse {
	res := SessionResponse{
		ID:        s.ID,
		SignIn:    NewSignInFormResponse(s.SignIn),
		Profile:   usecase.NewProfileView(s.Profile),
		Bookmarks: s.Bookmarks,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
	if res.Bookmarks == nil {
		res.Bookmarks = []string{}
	}
	if s.Composer != nil {
		v := usecase.NewComposerView(*s.Composer)
		res.Composer = &v
	}
	return res
}
