package usecase

import (
	"movie-review/internal/data/repository"
	"movie-review/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) *Service {
	user := NewUserService(repo.User, log)
	movie := NewMovieService(repo.Movie, log)

	return &Service{
		Auth:   NewAuthService(repo.User, tokens, log),
		User:   user,
		Movie:  movie,
		Review: NewReviewService(repo.Review, movie, user, log),
	}
}
