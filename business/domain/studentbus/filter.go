package studentbus

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

// QueryFilter holds the available fields a query can be filtered on. SchoolID
// is always set by the app layer, list queries never cross tenants.
type QueryFilter struct {
	SchoolID    *uuid.UUID
	ID          *uuid.UUID
	UserID      *uuid.UUID
	Name        *name.Name
	AdmissionNo *string
	YearLevel   *int
	Enabled     *bool
}
