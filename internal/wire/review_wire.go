package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"
	"movie-review/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/reviews/{id} - list a movie's reviews, {id} is the imdbId
	r.Get("/api/v1/reviews/{id}", reviewHandler.GetMovieReviews)

	// GET /api/v1/reviews/{id}/detail - single review by review id
	r.Get("/api/v1/reviews/{id}/detail", reviewHandler.GetReviewByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/v1/reviews - create review (authenticated users only)
		r.Post("/api/v1/reviews", reviewHandler.CreateReview)

		// PUT /api/v1/reviews/{id} - update review (owner only)
		r.Put("/api/v1/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/v1/reviews/{id} - delete review (owner only)
		r.Delete("/api/v1/reviews/{id}", reviewHandler.DeleteReview)
	})
}
