package usecase

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieService owns movie documents, including the denormalized review-id
// list on each movie. Only the review flows call Append/RemoveReviewID.
type MovieService interface {
	GetAll(ctx context.Context) ([]*entity.Movie, error)
	GetByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
	AppendReviewID(ctx context.Context, imdbID, reviewID string) error
	RemoveReviewID(ctx context.Context, imdbID, reviewID string) error
}

type movieService struct {
	movieRepo repository.MovieRepository
	log       *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		log:       log.With(zap.String("service", "movie")),
	}
}

// GetAll returns movies in the store's natural order, nothing stronger.
func (ms *movieService) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := ms.movieRepo.FindAll(ctx)
	if err != nil {
		ms.log.Error("Failed to get all movies", zap.Error(err))
		return nil, apperr.Store("get all movies", err)
	}

	return movies, nil
}

func (ms *movieService) GetByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	movie, err := ms.movieRepo.FindByImdbID(ctx, imdbID)
	if err != nil {
		ms.log.Error("Failed to get movie", zap.Error(err), zap.String("imdb_id", imdbID))
		return nil, apperr.Store("get movie by imdb ID", err)
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	return movie, nil
}

// Create assigns a fresh id when absent and defaults the review-id list
// to empty. imdb_id is not checked for duplicates.
func (ms *movieService) Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}
	if movie.ReviewIDs == nil {
		movie.ReviewIDs = []string{}
	}

	if err := ms.movieRepo.Create(ctx, movie); err != nil {
		ms.log.Error("Failed to create movie", zap.Error(err), zap.String("imdb_id", movie.ImdbID))
		return nil, apperr.Store("create movie", err)
	}

	ms.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("imdb_id", movie.ImdbID),
	)

	return movie, nil
}

func (ms *movieService) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	if movie.ReviewIDs == nil {
		movie.ReviewIDs = []string{}
	}

	if err := ms.movieRepo.Update(ctx, movie); err != nil {
		ms.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movie.ID.String()))
		return nil, apperr.Store("update movie", err)
	}

	return movie, nil
}

// Delete is idempotent: an id that matches nothing, malformed ones
// included, deletes nothing and succeeds.
func (ms *movieService) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	if err := ms.movieRepo.Delete(ctx, movieID); err != nil {
		ms.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", id))
		return apperr.Store("delete movie", err)
	}

	ms.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

// AppendReviewID is a read-modify-write: fetch the movie, append, persist
// the whole document. Two concurrent appends against one movie can lose
// the earlier one (last write wins); there is no compare-and-set.
func (ms *movieService) AppendReviewID(ctx context.Context, imdbID, reviewID string) error {
	movie, err := ms.movieRepo.FindByImdbID(ctx, imdbID)
	if err != nil {
		ms.log.Error("Failed to fetch movie for review append",
			zap.Error(err), zap.String("imdb_id", imdbID))
		return apperr.Store("fetch movie for review append", err)
	}
	if movie == nil {
		return apperr.NotFound("movie not found")
	}

	if movie.ReviewIDs == nil {
		movie.ReviewIDs = []string{}
	}
	movie.ReviewIDs = append(movie.ReviewIDs, reviewID)

	if err := ms.movieRepo.Update(ctx, movie); err != nil {
		ms.log.Error("Failed to append review ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
			zap.String("review_id", reviewID),
		)
		return apperr.Store("append review ID", err)
	}

	return nil
}

// RemoveReviewID drops the first matching id from the movie's list. A
// missing movie is a silent no-op so review deletion never blocks on it.
func (ms *movieService) RemoveReviewID(ctx context.Context, imdbID, reviewID string) error {
	movie, err := ms.movieRepo.FindByImdbID(ctx, imdbID)
	if err != nil {
		ms.log.Error("Failed to fetch movie for review removal",
			zap.Error(err), zap.String("imdb_id", imdbID))
		return apperr.Store("fetch movie for review removal", err)
	}
	if movie == nil {
		return nil
	}

	for i, id := range movie.ReviewIDs {
		if id == reviewID {
			movie.ReviewIDs = append(movie.ReviewIDs[:i], movie.ReviewIDs[i+1:]...)
			break
		}
	}

	if err := ms.movieRepo.Update(ctx, movie); err != nil {
		ms.log.Error("Failed to remove review ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
			zap.String("review_id", reviewID),
		)
		return apperr.Store("remove review ID", err)
	}

	return nil
}
