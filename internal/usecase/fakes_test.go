package usecase

import (
	"context"
	"sort"
	"sync"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. They hand out copies of
// stored rows so callers see snapshot reads, matching how rows come back
// from the database. Error fields let a test inject a store fault on a
// specific call.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie

	findErr   error
	updateErr error
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func copyMovie(m *entity.Movie) *entity.Movie {
	copied := *m
	copied.Genres = append([]string(nil), m.Genres...)
	copied.Backdrops = append([]string(nil), m.Backdrops...)
	copied.ReviewIDs = append([]string(nil), m.ReviewIDs...)
	copied.OTTPlatforms = append([]entity.OTTPlatform(nil), m.OTTPlatforms...)
	return &copied
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movies[movie.ID] = copyMovie(movie)
	return nil
}

func (r *fakeMovieRepo) FindAll(_ context.Context) ([]*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, copyMovie(m))
	}
	return out, nil
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	return copyMovie(movie), nil
}

func (r *fakeMovieRepo) FindByImdbID(_ context.Context, imdbID string) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, movie := range r.movies {
		if movie.ImdbID == imdbID {
			return copyMovie(movie), nil
		}
	}
	return nil, nil
}

func (r *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	// writes against a missing id touch nothing, like the real store
	if _, ok := r.movies[movie.ID]; !ok {
		return nil
	}
	r.movies[movie.ID] = copyMovie(movie)
	return nil
}

func (r *fakeMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.movies, id)
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*entity.Review

	createErr error
	deleteErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) FindByImdbID(_ context.Context, imdbID string, sortBy repository.ReviewSort) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if review.ImdbID == imdbID {
			copied := *review
			out = append(out, &copied)
		}
	}
	switch sortBy {
	case repository.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case repository.SortHighestRated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reviews[review.ID]
	if !ok {
		return nil
	}
	stored.Body = review.Body
	stored.Rating = review.Rating
	stored.UpdatedAt = review.UpdatedAt
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.reviews, id)
	return nil
}
