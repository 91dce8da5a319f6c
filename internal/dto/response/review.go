package response

import (
	"time"

	"movie-review/internal/data/entity"
)

// ReviewAuthor is the serialized author snapshot. No password field
// exists here, so the hash can never leak through a review.
type ReviewAuthor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ReviewResponse struct {
	ID        string       `json:"id"`
	Body      string       `json:"body"`
	Rating    int          `json:"rating"`
	User      ReviewAuthor `json:"user"`
	ImdbID    string       `json:"imdb_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:     review.ID.String(),
		Body:   review.Body,
		Rating: review.Rating,
		User: ReviewAuthor{
			ID:    review.User.ID.String(),
			Email: review.User.Email,
			Name:  review.User.Name,
			Role:  review.User.Role,
		},
		ImdbID:    review.ImdbID,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
