package docbus

import (
	"time"

	"github.com/google/uuid"
)

// QueryFilter holds the available fields a query can be filtered on. SchoolID
// is always set by the app layer, list queries never cross tenants.
type QueryFilter struct {
	SchoolID    *uuid.UUID
	ID          *uuid.UUID
	Name        *string
	EffectiveOn *time.Time
}
