package models

import "time"

// Lesson represents a course lesson visible to authenticated users.
type Lesson struct {
	ID          int64     `json:"id" db:"id"`
	URL         string    `json:"url" db:"url"`
	Description string    `json:"description" db:"description"`
	Duration    string    `json:"duration" db:"duration"`
	Seqno       int       `json:"seqNo" db:"seqno"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the Lesson model
func (Lesson) TableName() string {
	return "lessons"
}
