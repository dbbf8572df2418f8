package services

import (
	"context"

	"github.com/qmexai/ramadandata/internal/app/models"
)

// StudentStore is the persistence contract of StudentService.
// repositories.StudentRepository implements it.
type StudentStore interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, filter models.StudentFilter) (*models.StudentStats, error)
}

// UserStore is the persistence contract of AuthService and UserService.
// repositories.UserRepository implements it.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}
