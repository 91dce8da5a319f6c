package request

// Rating bounds live here at the boundary only; the review engine itself
// stores whatever it is handed.
type CreateReviewRequest struct {
	Body   string `json:"body" validate:"required,max=2000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	ImdbID string `json:"imdb_id" validate:"required"`
}

type UpdateReviewRequest struct {
	Body   string `json:"body" validate:"required,max=2000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}
