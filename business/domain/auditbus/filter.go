package auditbus

import (
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/google/uuid"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	SchoolID       *uuid.UUID
	ActorID        *uuid.UUID
	Action         *actions.Action
	Entity         *string
	EntityID       *uuid.UUID
	StartCreatedAt *time.Time
	EndCreatedAt   *time.Time
}
