package usecase

import (
	"context"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService is the review lifecycle: create, list (sorted), update and
// delete, with ownership enforcement and the movie's review-id list kept
// in step on create/delete.
type ReviewService interface {
	Create(ctx context.Context, email string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByImdbID(ctx context.Context, imdbID, sortKey string) ([]response.ReviewResponse, error)
	GetByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	Update(ctx context.Context, reviewID, email string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, reviewID, email string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movies     MovieService
	users      UserService
	log        *zap.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	movies MovieService,
	users UserService,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movies:     movies,
		users:      users,
		log:        log.With(zap.String("service", "review")),
	}
}

// Create resolves the acting user, checks the movie exists, persists the
// review and appends its id to the movie. The movie check runs before the
// insert so an unknown imdb id leaves no review behind; the insert and the
// movie update are still two writes with no rollback between them.
func (s *reviewService) Create(ctx context.Context, email string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if _, err := s.movies.GetByImdbID(ctx, req.ImdbID); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		Body:      req.Body,
		Rating:    req.Rating,
		User:      entity.Snapshot(user),
		ImdbID:    req.ImdbID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("imdb_id", req.ImdbID),
			zap.String("user_email", email),
		)
		return nil, apperr.Store("create review", err)
	}

	if err := s.movies.AppendReviewID(ctx, req.ImdbID, review.ID.String()); err != nil {
		// The review row already exists; a fault here leaves it
		// unreferenced by the movie until the next successful write.
		s.log.Error("Failed to append review ID to movie",
			zap.Error(err),
			zap.String("imdb_id", req.ImdbID),
			zap.String("review_id", review.ID.String()),
		)
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("imdb_id", req.ImdbID),
		zap.String("user_email", email),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByImdbID(ctx context.Context, imdbID, sortKey string) ([]response.ReviewResponse, error) {
	sort := repository.ParseReviewSort(sortKey)

	reviews, err := s.reviewRepo.FindByImdbID(ctx, imdbID, sort)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
			zap.String("sort_by", sortKey),
		)
		return nil, apperr.Store("list reviews", err)
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return responses, nil
}

func (s *reviewService) GetByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.fetchReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, reviewID, email string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	review, err := s.fetchReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.User.Email != email {
		return nil, apperr.Forbidden("only review owner can edit")
	}

	review.Body = req.Body
	review.Rating = req.Rating
	review.UpdatedAt = time.Now()

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Store("update review", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_email", email),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// Delete removes the review, then makes a best-effort pass at the movie's
// review-id list. A missing movie or a store fault during that cleanup is
// logged and swallowed; the delete itself already happened.
func (s *reviewService) Delete(ctx context.Context, reviewID, email string) error {
	review, err := s.fetchReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.User.Email != email {
		return apperr.Forbidden("only review owner can delete")
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return apperr.Store("delete review", err)
	}

	if err := s.movies.RemoveReviewID(ctx, review.ImdbID, reviewID); err != nil {
		s.log.Warn("Failed to remove review ID from movie",
			zap.Error(err),
			zap.String("imdb_id", review.ImdbID),
			zap.String("review_id", reviewID),
		)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("imdb_id", review.ImdbID),
		zap.String("user_email", email),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// fetchReview treats an unparseable id the same as an absent one: no
// review can exist under it, so the caller sees not-found either way.
func (s *reviewService) fetchReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.NotFound("review not found")
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Store("find review", err)
	}
	if review == nil {
		return nil, apperr.NotFound("review not found")
	}

	return review, nil
}
