package usecase

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventSessionOpened    = "session.opened"
	EventSessionClosed    = "session.closed"
	EventSignInValidated  = "signin.validated"
	EventProfileEditing   = "profile.editing"
	EventProfileCommitted = "profile.committed"
	EventProfileCancelled = "profile.cancelled"
	EventProfileAvatar    = "profile.avatar"
	EventReviewOpened     = "review.opened"
	EventReviewSubmitted  = "review.submitted"
	EventReviewCancelled  = "review.cancelled"
	EventBookmarkToggled  = "bookmark.toggled"
)

// Event describes a state change on one screen session.
type Event struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	Data      any       `json:"data,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// Publisher is the observer side of the screen state: the presentation
// layer subscribes to it instead of polling.
type Publisher interface {
	Publish(evt Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}

func newEvent(typ string, sessionID uuid.UUID, data any, now time.Time) Event {
	return Event{
		Type:      typ,
		SessionID: sessionID,
		Data:      data,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
