package review

import "testing"

func TestDraftState_SubmitReturnsRating(t *testing.T) {
	s := NewDraftState()
	s.SetRating(4)
	got := s.Submit()
	if got.Rating != 4 {
		t.Fatalf("rating = %d, want 4", got.Rating)
	}
}

func TestDraftState_UnsetRatingIsZero(t *testing.T) {
	s := NewDraftState()
	if s.Draft().Rating != 0 {
		t.Fatalf("unset rating = %d, want 0", s.Draft().Rating)
	}
	if !s.IsEmpty() {
		t.Fatalf("new draft must be empty")
	}
}

func TestDraftState_SubmitResets(t *testing.T) {
	s := NewDraftState()
	s.SetText("Great pacing, weak ending.")
	s.SetRating(3)

	got := s.Submit()
	if got.Text != "Great pacing, weak ending." || got.Rating != 3 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if !s.IsEmpty() {
		t.Fatalf("composer not reset after submit: %+v", s.Draft())
	}

	again := s.Submit()
	if again != (Draft{}) {
		t.Fatalf("second submit = %+v, want empty draft", again)
	}
}

func TestDraftState_NoClamping(t *testing.T) {
	s := NewDraftState()
	s.SetRating(9)
	if s.Draft().Rating != 9 {
		t.Fatalf("rating clamped to %d", s.Draft().Rating)
	}
	if InRange(9) || InRange(0) || !InRange(1) || !InRange(5) {
		t.Fatalf("InRange bounds wrong")
	}
}

func TestDraftState_Stars(t *testing.T) {
	s := RestoreDraftState(Draft{Rating: 2})
	want := [MaxRating]bool{true, true, false, false, false}
	if got := s.Stars(); got != want {
		t.Fatalf("Stars() = %v, want %v", got, want)
	}
}
