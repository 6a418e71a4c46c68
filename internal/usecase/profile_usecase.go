package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"movies/internal/domain/profile"
	"movies/internal/domain/session"
)

// ProfileView is what the profile screens render.
type ProfileView struct {
	Mode       profile.Mode    `json:"mode"`
	Profile    profile.Profile `json:"profile"`
	Buffer     *profile.Buffer `json:"buffer,omitempty"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	CanSignOut bool            `json:"can_sign_out"`
}

type ProfileUsecase interface {
	Get(ctx context.Context, sessionID uuid.UUID) (ProfileView, error)
	BeginEdit(ctx context.Context, sessionID uuid.UUID) (ProfileView, error)
	UpdateBuffer(ctx context.Context, sessionID uuid.UUID, firstName, lastName string) (ProfileView, error)
	Confirm(ctx context.Context, sessionID uuid.UUID) (ProfileView, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) (ProfileView, error)
	Toggle(ctx context.Context, sessionID uuid.UUID) (ProfileView, error)
	Commit(ctx context.Context, sessionID uuid.UUID, firstName, lastName string) (ProfileView, error)
	SetAvatar(ctx context.Context, sessionID uuid.UUID, ref string) (ProfileView, error)
}

type Profile struct {
	store *SessionStore
}

func NewProfileUsecase(store *SessionStore) *Profile {
	return &Profile{store: store}
}

func NewProfileView(st profile.State) ProfileView {
	first, last := st.Shown()
	v := ProfileView{
		Mode:       st.Mode,
		Profile:    st.Committed,
		FirstName:  first,
		LastName:   last,
		CanSignOut: st.CanSignOut(),
	}
	if st.Buffer != nil {
		b := *st.Buffer
		v.Buffer = &b
	}
	return v
}

func (u *Profile) Get(ctx context.Context, sessionID uuid.UUID) (ProfileView, error) {
	snap, err := u.store.load(ctx, sessionID)
	if err != nil {
		return ProfileView{}, err
	}
	return NewProfileView(snap.Profile), nil
}

func (u *Profile) BeginEdit(ctx context.Context, sessionID uuid.UUID) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		_, err := st.StartEditing()
		return err
	})
	if err != nil {
		return ProfileView{}, err
	}
	u.store.publish(EventProfileEditing, sessionID, v)
	return v, nil
}

func (u *Profile) UpdateBuffer(ctx context.Context, sessionID uuid.UUID, firstName, lastName string) (ProfileView, error) {
	return u.apply(ctx, sessionID, func(st *profile.State) error {
		return st.SetBuffer(firstName, lastName)
	})
}

func (u *Profile) Confirm(ctx context.Context, sessionID uuid.UUID) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		_, err := st.ConfirmEdit()
		return err
	})
	if err != nil {
		return ProfileView{}, err
	}
	u.committed(sessionID, v)
	return v, nil
}

func (u *Profile) Cancel(ctx context.Context, sessionID uuid.UUID) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		return st.CancelEdit()
	})
	if err != nil {
		return ProfileView{}, err
	}
	u.store.publish(EventProfileCancelled, sessionID, v)
	return v, nil
}

// Toggle keeps the single-button behaviour: leaving edit mode commits.
func (u *Profile) Toggle(ctx context.Context, sessionID uuid.UUID) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		st.Toggle()
		return nil
	})
	if err != nil {
		return ProfileView{}, err
	}
	if v.Mode == profile.ModeEditing {
		u.store.publish(EventProfileEditing, sessionID, v)
	} else {
		u.committed(sessionID, v)
	}
	return v, nil
}

func (u *Profile) Commit(ctx context.Context, sessionID uuid.UUID, firstName, lastName string) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		st.CommitEdit(firstName, lastName)
		return nil
	})
	if err != nil {
		return ProfileView{}, err
	}
	u.committed(sessionID, v)
	return v, nil
}

func (u *Profile) SetAvatar(ctx context.Context, sessionID uuid.UUID, ref string) (ProfileView, error) {
	v, err := u.apply(ctx, sessionID, func(st *profile.State) error {
		return st.SetAvatar(ref)
	})
	if err != nil {
		return ProfileView{}, err
	}
	u.store.publish(EventProfileAvatar, sessionID, v)
	return v, nil
}

func (u *Profile) apply(ctx context.Context, sessionID uuid.UUID, fn func(*profile.State) error) (ProfileView, error) {
	snap, err := u.store.update(ctx, sessionID, func(s *session.Snapshot) error {
		return mapProfileError(fn(&s.Profile))
	})
	if err != nil {
		return ProfileView{}, err
	}
	return NewProfileView(snap.Profile), nil
}

func (u *Profile) committed(sessionID uuid.UUID, v ProfileView) {
	u.store.logger.Printf("Profile committed | session=%s name=%q", sessionID, v.Profile.DisplayName())
	u.store.publish(EventProfileCommitted, sessionID, v)
}

func mapProfileError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, profile.ErrAlreadyEditing), errors.Is(err, profile.ErrNotEditing):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, profile.ErrEmptyAvatar):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
