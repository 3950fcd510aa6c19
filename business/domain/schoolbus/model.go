package schoolbus

import (
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

// School represents information about an individual school.
type School struct {
	ID        uuid.UUID
	Name      name.Name
	Slug      string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSchool contains information needed to create a new school.
type NewSchool struct {
	Name name.Name
	Slug string
}

// UpdateSchool contains information needed to update a school.
type UpdateSchool struct {
	Name    *name.Name
	Enabled *bool
}

// Membership links a user to a school with a role scoped to that school.
type Membership struct {
	UserID    uuid.UUID
	SchoolID  uuid.UUID
	Role      schoolrole.Role
	Status    memberstatus.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMembership contains information needed to enroll a user into a school.
type NewMembership struct {
	UserID   uuid.UUID
	SchoolID uuid.UUID
	Role     schoolrole.Role
}

// UpdateMembership contains information needed to update a membership.
type UpdateMembership struct {
	Role   *schoolrole.Role
	Status *memberstatus.Status
}
