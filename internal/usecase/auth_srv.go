package usecase

import (
	"context"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/apperr"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Store("check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Store("hash password", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultUserRole,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Store("create user", err)
	}

	signed, err := s.tokens.Generate(user.Email)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("email", user.Email))
		return nil, apperr.Store("generate token", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.AuthResponse{
		Token: signed,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Store("find user", err)
	}
	if user == nil {
		return nil, apperr.InvalidCredentials("invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("email", req.Email))
		return nil, apperr.InvalidCredentials("invalid email or password")
	}

	signed, err := s.tokens.Generate(user.Email)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("email", user.Email))
		return nil, apperr.Store("generate token", err)
	}

	s.log.Info("User logged in", zap.String("email", user.Email))

	return &response.AuthResponse{
		Token: signed,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
