package profile

import "errors"

var (
	ErrAlreadyEditing = errors.New("profile is already being edited")
	ErrNotEditing     = errors.New("profile is not being edited")
	ErrEmptyAvatar    = errors.New("avatar reference is empty")
)

const (
	DefaultFirstName = "Sarah"
	DefaultLastName  = "Abdullah"
	DefaultEmail     = "Xxxx234@gmail.com"
	DefaultAvatarRef = "avatar"
)

type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarRef string `json:"avatar_ref"`
}

func (p Profile) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// Placeholder is the profile every session starts with.
func Placeholder() Profile {
	return Profile{
		FirstName: DefaultFirstName,
		LastName:  DefaultLastName,
		Email:     DefaultEmail,
		AvatarRef: DefaultAvatarRef,
	}
}

type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
)

// Buffer holds uncommitted first/last name edits.
type Buffer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
