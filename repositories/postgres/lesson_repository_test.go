package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLessonRepositoryList(t *testing.T) {
	columns := []string{"id", "url", "description", "duration", "seqno", "created_at"}

	t.Run("returns lessons in sequence order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLessonRepository(db, zap.NewNop())

		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM lessons").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "angular-course-intro", "Course Introduction", "4:17", 1, now).
				AddRow(int64(2), "angular-course-setup", "Development Environment Setup", "6:38", 2, now))

		lessons, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, lessons, 2)
		assert.Equal(t, "Course Introduction", lessons[0].Description)
		assert.Equal(t, 2, lessons[1].Seqno)
	})

	t.Run("empty table yields no lessons", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLessonRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT (.+) FROM lessons").
			WillReturnRows(sqlmock.NewRows(columns))

		lessons, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, lessons)
	})
}
