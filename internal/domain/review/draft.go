package review

// DraftState is the review composer. It does not clamp ratings; callers
// restrict input to MinRating..MaxRating.
type DraftState struct {
	draft Draft
}

func NewDraftState() *DraftState {
	return &DraftState{}
}

// RestoreDraftState resumes a composer from a saved draft.
func RestoreDraftState(d Draft) *DraftState {
	return &DraftState{draft: d}
}

func (s *DraftState) SetText(text string) {
	s.draft.Text = text
}

func (s *DraftState) SetRating(n int) {
	s.draft.Rating = n
}

func (s *DraftState) Draft() Draft {
	return s.draft
}

// Submit returns the current draft and resets the composer.
func (s *DraftState) Submit() Draft {
	out := s.draft
	s.Reset()
	return out
}

func (s *DraftState) Reset() {
	s.draft = Draft{}
}

func (s *DraftState) IsEmpty() bool {
	return s.draft.Text == "" && s.draft.Rating == 0
}

// Stars reports which of the five stars render filled.
func (s *DraftState) Stars() [MaxRating]bool {
	var out [MaxRating]bool
	for i := MinRating; i <= MaxRating; i++ {
		out[i-1] = i <= s.draft.Rating
	}
	return out
}

func InRange(n int) bool {
	return n >= MinRating && n <= MaxRating
}
