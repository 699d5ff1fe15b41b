package postgres

import (
	"context"
	"fmt"

	"github.com/RahulMisra2000/angular-security-course/models"
	"github.com/RahulMisra2000/angular-security-course/repositories"
	"go.uber.org/zap"
)

// LessonRepository implements the repositories.LessonRepository interface
type LessonRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *DB, logger *zap.Logger) repositories.LessonRepository {
	return &LessonRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all lessons ordered by sequence number
func (r *LessonRepository) List(ctx context.Context) ([]models.Lesson, error) {
	query := `
		SELECT id, url, description, duration, seqno, created_at
		FROM lessons
		ORDER BY seqno ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.URL,
			&lesson.Description,
			&lesson.Duration,
			&lesson.Seqno,
			&lesson.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lessons: %w", err)
	}

	return lessons, nil
}
