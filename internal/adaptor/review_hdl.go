package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/apperr"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/v1/reviews (protected). An unknown movie
// or an unresolvable principal is the caller's mistake, so NotFound maps
// to 400 here rather than 404.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Create(r.Context(), email, &req)
	if err != nil {
		if apperr.IsNotFound(err) {
			h.log.Warn("create review failed - bad reference", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		respondError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetMovieReviews handles GET /api/v1/reviews/{id} (public).
// sort_by is permissive: unknown values fall back to newest-first.
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "id")
	if imdbID == "" {
		utils.ResponseBadRequest(w, "imdb ID is required", nil)
		return
	}

	sortKey := r.URL.Query().Get("sort_by")

	reviews, err := h.service.ListByImdbID(r.Context(), imdbID, sortKey)
	if err != nil {
		// retrieval faults surface as 404 on this endpoint
		h.log.Warn("get movie reviews failed", zap.Error(err))
		utils.ResponseNotFound(w, "reviews not found")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetReviewByID handles GET /api/v1/reviews/{id}/detail (public)
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.service.GetByID(r.Context(), reviewID)
	if err != nil {
		respondError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// UpdateReview handles PUT /api/v1/reviews/{id} (protected, owner only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Update(r.Context(), reviewID, email, &req)
	if err != nil {
		respondError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/v1/reviews/{id} (protected, owner only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), reviewID, email); err != nil {
		respondError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}
