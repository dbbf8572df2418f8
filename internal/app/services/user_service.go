package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// NewUser is the input for creating an admin account
type NewUser struct {
	Name        string
	Username    string
	Password    string
	PhoneNumber string
	Role        models.Role // defaults to admin
}

// UserService defines the interface for admin account management
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input NewUser) (*models.User, error)
	ResetPassword(ctx context.Context, username, password string) error
	CountUsers(ctx context.Context) (int64, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserStore
	hasher   *auth.PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, hasher *auth.PasswordHasher, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *userServiceImpl) validateNewUser(input *NewUser) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"username", input.Username},
		{"password", input.Password},
		{"phone_number", input.PhoneNumber},
	}
	for _, r := range required {
		if r.value == "" {
			return apperrors.NewValidationError(r.field, "missing required fields")
		}
	}

	if input.Role == "" {
		input.Role = models.RoleAdmin
	}
	if !input.Role.Valid() {
		return apperrors.ErrInvalidRole
	}
	return nil
}

// ListUsers returns every account without passwords, newest first
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// CountUsers returns the number of accounts
func (s *userServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// CreateUser validates input, hashes the password and stores the account
func (s *userServiceImpl) CreateUser(ctx context.Context, input NewUser) (*models.User, error) {
	if err := s.validateNewUser(&input); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:        input.Name,
		Username:    input.Username,
		PhoneNumber: input.PhoneNumber,
		Password:    hashed,
		Role:        input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("User created")
	user.Password = ""
	return user, nil
}

// ResetPassword replaces the password of the named account
func (s *userServiceImpl) ResetPassword(ctx context.Context, username, password string) error {
	if password == "" {
		return apperrors.NewValidationError("password", "missing required fields")
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}

	hashed, err := s.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset")
	return nil
}
