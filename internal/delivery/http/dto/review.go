package dto

import (
	"time"

	"movies/internal/domain/review"
)

type ReviewTextRequest struct {
	Text string `json:"text"`
}

type ReviewRatingRequest struct {
	Rating *int `json:"rating"`
}

type ReviewResponse struct {
	MovieID     string    `json:"movie_id"`
	Author      string    `json:"author,omitempty"`
	Text        string    `json:"text"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewReviewResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		MovieID:     r.MovieID,
		Author:      r.Author,
		Text:        r.Text,
		Rating:      r.Rating,
		SubmittedAt: r.SubmittedAt,
	}
}

func NewReviewResponses(items []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewReviewResponse(r))
	}
	return out
}
