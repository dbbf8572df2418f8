package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories over the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
