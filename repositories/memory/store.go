// Package memory provides in-memory repositories used in development mode and
// in tests, when no PostgreSQL database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/RahulMisra2000/angular-security-course/models"
	"github.com/RahulMisra2000/angular-security-course/repositories"
	"github.com/google/uuid"
)

// UserRepository is a map-backed repositories.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create persists a new user
func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repositories.ErrEmailTaken
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	user := r.byID[id]
	return &user, nil
}

// LessonRepository is a slice-backed repositories.LessonRepository.
type LessonRepository struct {
	mu      sync.RWMutex
	lessons []models.Lesson
}

// NewLessonRepository creates a lesson repository holding the given lessons.
func NewLessonRepository(lessons []models.Lesson) *LessonRepository {
	return &LessonRepository{lessons: lessons}
}

// List returns all lessons ordered by sequence number
func (r *LessonRepository) List(_ context.Context) ([]models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Lesson, len(r.lessons))
	copy(out, r.lessons)
	return out, nil
}

// SeedLessons is the development data set served by /api/lessons when running
// without a database.
func SeedLessons() []models.Lesson {
	return []models.Lesson{
		{ID: 1, URL: "angular-security-course-intro", Description: "Course Introduction and Overview", Duration: "4:17", Seqno: 1},
		{ID: 2, URL: "angular-security-setup", Description: "Development Environment Setup", Duration: "6:38", Seqno: 2},
		{ID: 3, URL: "stateless-sessions-jwt", Description: "Stateless Sessions with JSON Web Tokens", Duration: "9:46", Seqno: 3},
		{ID: 4, URL: "csrf-double-submit", Description: "CSRF and the Double-Submit Cookie Defense", Duration: "8:12", Seqno: 4},
		{ID: 5, URL: "password-storage", Description: "Secure Password Storage", Duration: "7:51", Seqno: 5},
	}
}
