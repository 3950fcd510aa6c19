package studentbus

import (
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

// Student represents a student record inside a school. UserID links the
// record to an identity account when the student can log in, uuid.Nil
// otherwise.
type Student struct {
	ID          uuid.UUID
	SchoolID    uuid.UUID
	UserID      uuid.UUID
	Name        name.Name
	AdmissionNo string
	YearLevel   int
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStudent contains information needed to create a new student.
type NewStudent struct {
	SchoolID    uuid.UUID
	UserID      uuid.UUID
	Name        name.Name
	AdmissionNo string
	YearLevel   int
}

// UpdateStudent contains information needed to update a student.
type UpdateStudent struct {
	Name      *name.Name
	YearLevel *int
	Enabled   *bool
}
