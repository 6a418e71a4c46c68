package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Draft is an in-progress review. Rating 0 means unset.
type Draft struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Review is a submitted draft as held by the review collaborator.
type Review struct {
	MovieID     string    `json:"movie_id"`
	Author      string    `json:"author,omitempty"`
	Text        string    `json:"text"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}
