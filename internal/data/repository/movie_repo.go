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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, imdb_id, title, release_date, trailer_link, genres, poster, backdrops, review_ids, ott_platforms`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.ImdbID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.TrailerLink,
		&movie.Genres,
		&movie.Poster,
		&movie.Backdrops,
		&movie.ReviewIDs,
		&movie.OTTPlatforms,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (mr *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, imdb_id, title, release_date, trailer_link,
		                    genres, poster, backdrops, review_ids, ott_platforms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.ImdbID,
		movie.Title,
		movie.ReleaseDate,
		movie.TrailerLink,
		movie.Genres,
		movie.Poster,
		movie.Backdrops,
		movie.ReviewIDs,
		movie.OTTPlatforms,
	)

	if err != nil {
		mr.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("imdb_id", movie.ImdbID),
		)
		return fmt.Errorf("create movie %s: %w", movie.ImdbID, err)
	}

	return nil
}

func (mr *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies`

	rows, err := mr.db.Query(ctx, query)
	if err != nil {
		mr.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			mr.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

func (mr *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(mr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

// FindByImdbID returns the first match. imdb_id carries no unique index,
// duplicates resolve to whichever row the store yields first.
func (mr *movieRepository) FindByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1 LIMIT 1`

	movie, err := scanMovie(mr.db.QueryRow(ctx, query, imdbID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by imdb ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
		)
		return nil, fmt.Errorf("find movie by imdb ID %s: %w", imdbID, err)
	}

	return movie, nil
}

// Update replaces the whole movie row. The review-id list rides along,
// so concurrent updates of the same movie are last-write-wins.
func (mr *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET imdb_id = $2, title = $3, release_date = $4, trailer_link = $5,
		    genres = $6, poster = $7, backdrops = $8, review_ids = $9, ott_platforms = $10
		WHERE id = $1
	`

	result, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.ImdbID,
		movie.Title,
		movie.ReleaseDate,
		movie.TrailerLink,
		movie.Genres,
		movie.Poster,
		movie.Backdrops,
		movie.ReviewIDs,
		movie.OTTPlatforms,
	)

	if err != nil {
		mr.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	// zero rows means the id is gone; nothing to report
	if result.RowsAffected() == 0 {
		mr.log.Warn("Update matched no movie", zap.String("movie_id", movie.ID.String()))
	}

	return nil
}

func (mr *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		mr.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	// deleting an absent id is a no-op, same as the review cleanup path
	if result.RowsAffected() == 0 {
		mr.log.Warn("Delete matched no movie", zap.String("movie_id", id.String()))
	}

	return nil
}
