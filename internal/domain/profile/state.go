package profile

// State is the editable profile: a committed record plus a tagged
// Viewing | Editing(buffer) state. Buffer is non-nil only while editing.
type State struct {
	Committed Profile `json:"committed"`
	Mode      Mode    `json:"mode"`
	Buffer    *Buffer `json:"buffer,omitempty"`
}

func NewState(p Profile) *State {
	return &State{Committed: p, Mode: ModeViewing}
}

func (s *State) Editing() bool {
	return s.Mode == ModeEditing && s.Buffer != nil
}

// BeginEdit returns the committed names used to seed an edit buffer.
func (s *State) BeginEdit() (string, string) {
	return s.Committed.FirstName, s.Committed.LastName
}

// CommitEdit overwrites the committed names. Empty values are accepted.
func (s *State) CommitEdit(firstName, lastName string) {
	s.Committed.FirstName = firstName
	s.Committed.LastName = lastName
}

func (s *State) StartEditing() (Buffer, error) {
	if s.Editing() {
		return Buffer{}, ErrAlreadyEditing
	}
	first, last := s.BeginEdit()
	s.Buffer = &Buffer{FirstName: first, LastName: last}
	s.Mode = ModeEditing
	return *s.Buffer, nil
}

func (s *State) SetBuffer(firstName, lastName string) error {
	if !s.Editing() {
		return ErrNotEditing
	}
	s.Buffer.FirstName = firstName
	s.Buffer.LastName = lastName
	return nil
}

func (s *State) ConfirmEdit() (Profile, error) {
	if !s.Editing() {
		return Profile{}, ErrNotEditing
	}
	s.CommitEdit(s.Buffer.FirstName, s.Buffer.LastName)
	s.stopEditing()
	return s.Committed, nil
}

func (s *State) CancelEdit() error {
	if !s.Editing() {
		return ErrNotEditing
	}
	s.stopEditing()
	return nil
}

// Toggle flips between viewing and editing. Leaving edit mode this way
// always commits the buffer.
func (s *State) Toggle() Mode {
	if s.Editing() {
		_, _ = s.ConfirmEdit()
		return s.Mode
	}
	_, _ = s.StartEditing()
	return s.Mode
}

// SetAvatar replaces the avatar. The picker is only enabled in edit mode.
func (s *State) SetAvatar(ref string) error {
	if !s.Editing() {
		return ErrNotEditing
	}
	if ref == "" {
		return ErrEmptyAvatar
	}
	s.Committed.AvatarRef = ref
	return nil
}

// Shown returns the names the screen displays: the buffer while editing,
// the committed record otherwise.
func (s *State) Shown() (string, string) {
	if s.Editing() {
		return s.Buffer.FirstName, s.Buffer.LastName
	}
	return s.Committed.FirstName, s.Committed.LastName
}

func (s *State) CanSignOut() bool {
	return !s.Editing()
}

func (s *State) stopEditing() {
	s.Buffer = nil
	s.Mode = ModeViewing
}
