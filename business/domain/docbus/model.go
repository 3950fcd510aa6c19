package docbus

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a priced document a school issues. The price applies
// within [EffectiveFrom, EffectiveTo]; a nil EffectiveTo means open-ended.
type Document struct {
	ID            uuid.UUID
	SchoolID      uuid.UUID
	Name          string
	Price         float64
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDocument contains information needed to create a new document.
type NewDocument struct {
	SchoolID      uuid.UUID
	Name          string
	Price         float64
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
}

// UpdateDocument contains information needed to update a document.
type UpdateDocument struct {
	Name          *string
	Price         *float64
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
}
