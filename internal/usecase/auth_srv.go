package usecase

import (
	"context"
	"fmt"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/dto/response"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo        *repository.Repository
	expiryHours int
	log         *zap.Logger
}

func NewAuthService(repo *repository.Repository, sessionCfg utils.SessionConfig, log *zap.Logger) AuthService {
	return &authService{
		repo:        repo,
		expiryHours: sessionCfg.ExpiryHours,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base:         entity.NewBase(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return s.startSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, NewValidationError("invalid email or password")
	}
	if !user.IsActive {
		return nil, NewValidationError("account is disabled")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.startSession(ctx, user)
}

func (s *authService) startSession(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateSessionToken(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.expiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &response.AuthResponse{
		User:      userToResponse(user),
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func userToResponse(user *entity.User) response.UserResponse {
	var driverStatus *string
	if user.DriverStatus != nil {
		status := string(*user.DriverStatus)
		driverStatus = &status
	}
	return response.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         string(user.Role),
		DriverStatus: driverStatus,
	}
}
