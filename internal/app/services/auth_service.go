package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// BootstrapAccount is the credential pair that may create the first
// superuser on an empty users table, along with the profile it gets.
type BootstrapAccount struct {
	Username    string
	Password    string
	Name        string
	PhoneNumber string
}

// matches compares the pair in constant time. An unset password never matches.
func (b BootstrapAccount) matches(username, password string) bool {
	if b.Username == "" || b.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(b.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(b.Password), []byte(password)) == 1
	return userOK && passOK
}

// LoginResult carries the minted session token and its payload.
type LoginResult struct {
	Token   string
	Session auth.SessionPayload
}

// AuthOptions tunes the credential checks of AuthService.
type AuthOptions struct {
	// LegacyPlaintextMigration accepts a stored plaintext password once and
	// replaces it with a bcrypt digest.
	LegacyPlaintextMigration bool
	Bootstrap                BootstrapAccount
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo UserStore
	hasher   *auth.PasswordHasher
	codec    *auth.SessionCodec
	options  AuthOptions
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	hasher *auth.PasswordHasher,
	codec *auth.SessionCodec,
	options AuthOptions,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		codec:    codec,
		options:  options,
		logger:   logger,
	}
}

// Login verifies the credentials and mints a session. Unknown usernames and
// wrong passwords both yield apperrors.ErrInvalidCredentials. The username
// is matched exactly as submitted.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username", "username and password are required")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("error finding user: %w", err)
		}
		if !s.options.Bootstrap.matches(username, password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		user, err = s.createBootstrapUser(ctx, password)
		if err != nil {
			return nil, err
		}
	} else if err := s.verifyPassword(ctx, user, password); err != nil {
		return nil, err
	}

	payload := auth.SessionPayload{ID: user.ID, Role: user.Role, Name: user.Name}
	token, err := s.codec.Encrypt(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &LoginResult{Token: token, Session: payload}, nil
}

func (s *authServiceImpl) verifyPassword(ctx context.Context, user *models.User, password string) error {
	if auth.IsHashed(user.Password) {
		if !s.hasher.CheckPassword(user.Password, password) {
			return apperrors.ErrInvalidCredentials
		}
		return nil
	}

	if !s.options.LegacyPlaintextMigration || !auth.MatchesPlaintext(user.Password, password) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := s.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("error migrating plaintext password: %w", err)
	}
	user.Password = hashed

	s.logger.Warn().Int64("userID", user.ID).Str("username", user.Username).
		Msg("Migrated legacy plaintext password to bcrypt")
	return nil
}

// createBootstrapUser creates the first superuser. It only succeeds while
// the users table is empty; concurrent attempts lose on the username
// unique constraint.
func (s *authServiceImpl) createBootstrapUser(ctx context.Context, password string) (*models.User, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrInvalidCredentials
	}

	hashed, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := s.options.Bootstrap
	user := &models.User{
		Name:        account.Name,
		Username:    account.Username,
		PhoneNumber: account.PhoneNumber,
		Password:    hashed,
		Role:        models.RoleSuperuser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error creating bootstrap user: %w", err)
	}

	s.logger.Warn().Int64("userID", user.ID).Str("username", user.Username).Msg("Bootstrap superuser created")
	return user, nil
}
