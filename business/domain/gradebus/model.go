package gradebus

import (
	"time"

	"github.com/google/uuid"
)

// Grade represents a single assessment result for a student.
type Grade struct {
	ID         uuid.UUID
	SchoolID   uuid.UUID
	StudentID  uuid.UUID
	Subject    string
	Assessment string
	Score      float64
	MaxScore   float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGrade contains information needed to record a new grade.
type NewGrade struct {
	SchoolID   uuid.UUID
	StudentID  uuid.UUID
	Subject    string
	Assessment string
	Score      float64
	MaxScore   float64
}

// UpdateGrade contains information needed to update a grade.
type UpdateGrade struct {
	Score    *float64
	MaxScore *float64
}

// Summary aggregates a student's grades into an overall standing.
type Summary struct {
	Grades         int
	AveragePercent float64
	Letter         string
}
