package repositories

import (
	"context"
	"errors"

	"github.com/RahulMisra2000/angular-security-course/models"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when creating a user with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// LessonRepository defines the interface for lesson data access
type LessonRepository interface {
	// List returns all lessons ordered by sequence number
	List(ctx context.Context) ([]models.Lesson, error)
}
