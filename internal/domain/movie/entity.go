package movie

import (
	"errors"

	"movies/internal/domain/review"
)

var ErrNotFound = errors.New("movie not found")

type Movie struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Year      int             `json:"year"`
	Runtime   string          `json:"runtime"`
	Genres    []string        `json:"genres"`
	AgeRating string          `json:"age_rating"`
	Language  string          `json:"language"`
	Story     string          `json:"story"`
	Director  string          `json:"director"`
	Stars     []string        `json:"stars"`
	PosterRef string          `json:"poster_ref"`
	Reviews   []review.Review `json:"reviews"`
}
