package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/dberrors"
	"github.com/qmexai/ramadandata/internal/pkg/logger"
)

// UserRepository handles admin account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUsername retrieves a user, including the stored password, by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "username", "password", "role", "phone_number", "created_at").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Username, &user.Password, &user.Role, &user.PhoneNumber, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}
	return user, nil
}

// Count returns the number of admin accounts.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// Create inserts user with an already hashed password. A duplicate username
// or phone number yields apperrors.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "username", "password", "role", "phone_number").
		Values(user.Name, user.Username, user.Password, user.Role, user.PhoneNumber).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().
				Bool("usernameTaken", dberrors.IsDuplicateConstraintError(err, dberrors.UsersUsernameKey)).
				Bool("phoneTaken", dberrors.IsDuplicateConstraintError(err, dberrors.UsersPhoneNumberKey)).
				Msg("Duplicate user rejected")
			return apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// List returns all users without their passwords, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "username", "role", "phone_number", "created_at").
		From("users").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Username, &user.Role, &user.PhoneNumber, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdatePassword replaces the stored password digest of the user with id.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user password")
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
