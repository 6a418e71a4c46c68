package dto

import "movies/internal/usecase"

type MovieDetailsResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Year          int              `json:"year"`
	Runtime       string           `json:"runtime"`
	Genres        []string         `json:"genres"`
	AgeRating     string           `json:"age_rating"`
	Language      string           `json:"language"`
	Story         string           `json:"story"`
	Director      string           `json:"director"`
	Stars         []string         `json:"stars"`
	PosterRef     string           `json:"poster_ref"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int              `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
	Bookmarked    *bool            `json:"bookmarked,omitempty"`
}

type BookmarkResponse struct {
	MovieID    string `json:"movie_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// NewMovieDetailsResponse sets Bookmarked only when the lookup was made in
// a session.
func NewMovieDetailsResponse(d usecase.MovieDetails, inSession bool) MovieDetailsResponse {
	res := MovieDetailsResponse{
		ID:            d.ID,
		Title:         d.Title,
		Year:          d.Year,
		Runtime:       d.Runtime,
		Genres:        d.Genres,
		AgeRating:     d.AgeRating,
		Language:      d.Language,
		Story:         d.Story,
		Director:      d.Director,
		Stars:         d.Movie.Stars,
		PosterRef:     d.PosterRef,
		AverageRating: d.AverageRating,
		ReviewCount:   len(d.Reviews),
		Reviews:       NewReviewResponses(d.Reviews),
	}
	if inSession {
		b := d.Bookmarked
		res.Bookmarked = &b
	}
	return res
}
