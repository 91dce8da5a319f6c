package usecase

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService resolves an authenticated principal (email) to a full user
// record. Read-only; registration and login live in AuthService.
type UserService interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		us.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, apperr.Store("find user by email", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	return user, nil
}

func (us *userService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", id, err)
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user by ID", zap.Error(err), zap.String("user_id", id))
		return nil, apperr.Store("find user by ID", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	return user, nil
}
