package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewSort is the closed set of list orderings. Anything a caller sends
// that is not a known key resolves to SortNewest; that fallback lives in
// ParseReviewSort and nowhere else.
type ReviewSort int

const (
	SortNewest ReviewSort = iota
	SortOldest
	SortHighestRated
)

func ParseReviewSort(key string) ReviewSort {
	switch key {
	case "oldest":
		return SortOldest
	case "highest-rated":
		return SortHighestRated
	default:
		return SortNewest
	}
}

func (s ReviewSort) orderBy() string {
	switch s {
	case SortOldest:
		return "created_at ASC"
	case SortHighestRated:
		return "rating DESC"
	default:
		return "created_at DESC"
	}
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByImdbID(ctx context.Context, imdbID string, sort ReviewSort) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, body, rating, user_id, user_email, user_name,
		                     user_role, imdb_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := rr.db.Exec(ctx, query,
		review.ID,
		review.Body,
		review.Rating,
		review.User.ID,
		review.User.Email,
		review.User.Name,
		review.User.Role,
		review.ImdbID,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("imdb_id", review.ImdbID),
			zap.String("user_email", review.User.Email),
		)
		return fmt.Errorf("create review for %s by %s: %w",
			review.ImdbID, review.User.Email, err)
	}

	return nil
}

const reviewColumns = `id, body, rating, user_id, user_email, user_name, user_role, imdb_id, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.Body,
		&review.Rating,
		&review.User.ID,
		&review.User.Email,
		&review.User.Name,
		&review.User.Role,
		&review.ImdbID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (rr *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(rr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (rr *reviewRepository) FindByImdbID(ctx context.Context, imdbID string, sort ReviewSort) ([]*entity.Review, error) {
	// orderBy comes from the closed ReviewSort enum, never from input.
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE imdb_id = $1 ORDER BY %s`,
		reviewColumns, sort.orderBy())

	rows, err := rr.db.Query(ctx, query, imdbID)
	if err != nil {
		rr.log.Error("Failed to find reviews by imdb ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
		)
		return nil, fmt.Errorf("find reviews by imdb ID %s: %w", imdbID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			rr.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// Update persists body, rating and updated_at. The embedded author
// snapshot and created_at are write-once.
func (rr *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET body = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		review.ID,
		review.Body,
		review.Rating,
		review.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	// callers fetch before writing; zero rows only happens when the
	// review vanished in between, and the write is then moot
	if result.RowsAffected() == 0 {
		rr.log.Warn("Update matched no review", zap.String("review_id", review.ID.String()))
	}

	return nil
}

func (rr *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		rr.log.Warn("Delete matched no review", zap.String("review_id", id.String()))
	}

	return nil
}
