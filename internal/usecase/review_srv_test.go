package usecase

import (
	"context"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type reviewTestEnv struct {
	userRepo   *fakeUserRepo
	movieRepo  *fakeMovieRepo
	reviewRepo *fakeReviewRepo

	movies  MovieService
	reviews ReviewService
}

func newReviewTestEnv() *reviewTestEnv {
	log := zap.NewNop()
	userRepo := newFakeUserRepo()
	movieRepo := newFakeMovieRepo()
	reviewRepo := newFakeReviewRepo()

	users := NewUserService(userRepo, log)
	movies := NewMovieService(movieRepo, log)
	reviews := NewReviewService(reviewRepo, movies, users, log)

	return &reviewTestEnv{
		userRepo:   userRepo,
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		movies:     movies,
		reviews:    reviews,
	}
}

func (env *reviewTestEnv) seedUser(t *testing.T, email, name string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         entity.DefaultUserRole,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, env.userRepo.Create(context.Background(), user))
	return user
}

func (env *reviewTestEnv) seedMovie(t *testing.T, imdbID, title string) *entity.Movie {
	t.Helper()
	movie := &entity.Movie{
		ID:        uuid.New(),
		ImdbID:    imdbID,
		Title:     title,
		ReviewIDs: []string{},
	}
	require.NoError(t, env.movieRepo.Create(context.Background(), movie))
	return movie
}

func TestCreateReview_Success(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	resp, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Mind-bending.",
		Rating: 5,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Mind-bending.", resp.Body)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "tt0133093", resp.ImdbID)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)

	// Author snapshot carries identity, never the password hash.
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, user.Email, resp.User.Email)
	assert.Equal(t, user.Name, resp.User.Name)
	assert.Equal(t, entity.DefaultUserRole, resp.User.Role)

	// The movie now references the review.
	movie, err := env.movies.GetByImdbID(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, []string{resp.ID}, movie.ReviewIDs)
}

func TestCreateReview_UnknownMovieLeavesNothingBehind(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")

	resp, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Ghost review",
		Rating: 3,
		ImdbID: "tt9999999",
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, env.reviewRepo.reviews)
}

func TestCreateReview_MovieUpdateFailureLeavesReviewBehind(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	env.movieRepo.updateErr = assert.AnError

	resp, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Orphan",
		Rating: 4,
		ImdbID: "tt0133093",
	})
	require.Error(t, err)
	assert.Nil(t, resp)

	// The review row was inserted before the movie write failed; it
	// stays in the store, unreferenced by the movie.
	assert.Len(t, env.reviewRepo.reviews, 1)

	env.movieRepo.updateErr = nil
	movie, err := env.movies.GetByImdbID(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Empty(t, movie.ReviewIDs)
}

func TestCreateReview_SnapshotFrozenAtCreation(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	resp, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "First impression",
		Rating: 4,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	// The user record changes after the fact; the review keeps the
	// identity it captured at write time.
	env.userRepo.mu.Lock()
	env.userRepo.users[user.ID].Name = "Alice Renamed"
	env.userRepo.mu.Unlock()

	got, err := env.reviews.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.User.Name)
}

func TestListByImdbID_SortOrders(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	base := time.Now()
	ids := make([]string, 3)
	ratings := []int{2, 5, 3}
	for i := 0; i < 3; i++ {
		review := &entity.Review{
			ID:        uuid.New(),
			Body:      "review",
			Rating:    ratings[i],
			User:      entity.Snapshot(user),
			ImdbID:    "tt0133093",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.reviewRepo.Create(ctx, review))
		ids[i] = review.ID.String()
	}

	newest, err := env.reviews.ListByImdbID(ctx, "tt0133093", "newest")
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{newest[0].ID, newest[1].ID, newest[2].ID})

	oldest, err := env.reviews.ListByImdbID(ctx, "tt0133093", "oldest")
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0], ids[1], ids[2]}, []string{oldest[0].ID, oldest[1].ID, oldest[2].ID})

	highest, err := env.reviews.ListByImdbID(ctx, "tt0133093", "highest-rated")
	require.NoError(t, err)
	assert.Equal(t, 5, highest[0].Rating)
	assert.Equal(t, 3, highest[1].Rating)
	assert.Equal(t, 2, highest[2].Rating)

	// Unknown keys fall back to newest instead of erroring.
	fallback, err := env.reviews.ListByImdbID(ctx, "tt0133093", "bogus")
	require.NoError(t, err)
	assert.Equal(t, newest[0].ID, fallback[0].ID)
}

func TestListByImdbID_NoReviews(t *testing.T) {
	env := newReviewTestEnv()

	reviews, err := env.reviews.ListByImdbID(context.Background(), "tt0000000", "")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestGetReviewByID(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Solid",
		Rating: 4,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	got, err := env.reviews.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = env.reviews.GetByID(ctx, uuid.NewString())
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateReview_OwnerEdits(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "First take",
		Rating: 3,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := env.reviews.Update(ctx, created.ID, user.Email, &request.UpdateReviewRequest{
		Body:   "Second take",
		Rating: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Second take", updated.Body)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateReview_NonOwnerForbidden(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	owner := env.seedUser(t, "alice@example.com", "Alice")
	env.seedUser(t, "bob@example.com", "Bob")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, owner.Email, &request.CreateReviewRequest{
		Body:   "Original",
		Rating: 4,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	_, err = env.reviews.Update(ctx, created.ID, "bob@example.com", &request.UpdateReviewRequest{
		Body:   "Hijacked",
		Rating: 1,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))

	got, err := env.reviews.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Body)
	assert.Equal(t, 4, got.Rating)
}

func TestUpdateReview_UnknownID(t *testing.T) {
	env := newReviewTestEnv()

	_, err := env.reviews.Update(context.Background(), uuid.NewString(), "alice@example.com", &request.UpdateReviewRequest{
		Body:   "anything",
		Rating: 3,
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteReview_OwnerDeletes(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Going away",
		Rating: 2,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	require.NoError(t, env.reviews.Delete(ctx, created.ID, user.Email))

	_, err = env.reviews.GetByID(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	movie, err := env.movies.GetByImdbID(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Empty(t, movie.ReviewIDs)
}

func TestDeleteReview_NonOwnerForbidden(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	owner := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, owner.Email, &request.CreateReviewRequest{
		Body:   "Keep out",
		Rating: 4,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	err = env.reviews.Delete(ctx, created.ID, "bob@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))

	_, err = env.reviews.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestDeleteReview_MissingMovieStillSucceeds(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	movie := env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Orphaned soon",
		Rating: 3,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	require.NoError(t, env.movies.Delete(ctx, movie.ID.String()))

	require.NoError(t, env.reviews.Delete(ctx, created.ID, user.Email))

	_, err = env.reviews.GetByID(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteReview_MovieCleanupFaultIsSwallowed(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "alice@example.com", "Alice")
	env.seedMovie(t, "tt0133093", "The Matrix")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "Fault tolerant",
		Rating: 3,
		ImdbID: "tt0133093",
	})
	require.NoError(t, err)

	env.movieRepo.updateErr = assert.AnError

	// The cleanup of the movie's review-id list fails but the delete
	// itself has already happened, so the caller still gets success.
	require.NoError(t, env.reviews.Delete(ctx, created.ID, user.Email))

	_, err = env.reviews.GetByID(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	env.movieRepo.updateErr = nil
	movie, err := env.movies.GetByImdbID(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, movie.ReviewIDs)
}

func TestCreateThenList_ReturnsExactlyThatReview(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	user := env.seedUser(t, "a@x.com", "A")
	env.seedMovie(t, "tt1", "Movie One")

	created, err := env.reviews.Create(ctx, user.Email, &request.CreateReviewRequest{
		Body:   "great",
		Rating: 5,
		ImdbID: "tt1",
	})
	require.NoError(t, err)

	listed, err := env.reviews.ListByImdbID(ctx, "tt1", "newest")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "great", listed[0].Body)
	assert.Equal(t, 5, listed[0].Rating)
}

func TestDeleteReview_UnknownID(t *testing.T) {
	env := newReviewTestEnv()

	err := env.reviews.Delete(context.Background(), uuid.NewString(), "alice@example.com")
	assert.True(t, apperr.IsNotFound(err))
}

func TestReview_MalformedIDIsNotFound(t *testing.T) {
	env := newReviewTestEnv()
	ctx := context.Background()

	// Ids are opaque strings to callers; one that can never match a
	// stored review resolves as missing, not as a server fault.
	_, err := env.reviews.GetByID(ctx, "abc")
	assert.True(t, apperr.IsNotFound(err))

	_, err = env.reviews.Update(ctx, "abc", "alice@example.com", &request.UpdateReviewRequest{
		Body:   "edit",
		Rating: 3,
	})
	assert.True(t, apperr.IsNotFound(err))

	err = env.reviews.Delete(ctx, "abc", "alice@example.com")
	assert.True(t, apperr.IsNotFound(err))
}
