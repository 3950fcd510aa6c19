package schoolbus

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID      *uuid.UUID
	Name    *name.Name
	Slug    *string
	Enabled *bool
}
