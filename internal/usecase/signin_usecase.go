package usecase

import (
	"context"

	"github.com/google/uuid"

	"movies/internal/domain/session"
	"movies/internal/domain/signin"
)

type SignInFormInput struct {
	Email    *string
	Password *string
}

type SignInUsecase interface {
	Validate(email, password string) signin.ValidationResult
	UpdateForm(ctx context.Context, sessionID uuid.UUID, in SignInFormInput) (signin.Form, error)
	TogglePasswordVisibility(ctx context.Context, sessionID uuid.UUID) (signin.Form, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (signin.ValidationResult, error)
}

// SignIn validates credentials locally. A valid result establishes nothing.
type SignIn struct {
	store *SessionStore
}

func NewSignInUsecase(store *SessionStore) *SignIn {
	return &SignIn{store: store}
}

func (u *SignIn) Validate(email, password string) signin.ValidationResult {
	return signin.Validate(email, password)
}

func (u *SignIn) UpdateForm(ctx context.Context, sessionID uuid.UUID, in SignInFormInput) (signin.Form, error) {
	if in.Email == nil && in.Password == nil {
		return signin.Form{}, ErrInvalidInput
	}
	snap, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		if in.Email != nil {
			s.SignIn.SetEmail(*in.Email)
		}
		if in.Password != nil {
			s.SignIn.SetPassword(*in.Password)
		}
		return nil
	})
	if err != nil {
		return signin.Form{}, err
	}
	return snap.SignIn, nil
}

func (u *SignIn) TogglePasswordVisibility(ctx context.Context, sessionID uuid.UUID) (signin.Form, error) {
	snap, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		s.SignIn.TogglePasswordVisibility()
		return nil
	})
	if err != nil {
		return signin.Form{}, err
	}
	return snap.SignIn, nil
}

// Submit validates the form and ends the attempt: the password is dropped
// from the session whatever the outcome, so a retry must re-enter it.
func (u *SignIn) Submit(ctx context.Context, sessionID uuid.UUID) (signin.ValidationResult, error) {
	var res signin.ValidationResult
	_, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		res = s.SignIn.Validate()
		s.SignIn.SetPassword("")
		return nil
	})
	if err != nil {
		return signin.ValidationResult{}, err
	}
	u.store.publish(EventSignInValidated, sessionID, res)
	return res, nil
}
