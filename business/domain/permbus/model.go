package permbus

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/resource"
	"github.com/google/uuid"
)

// Grant represents the actions a user may perform on a resource instance.
type Grant struct {
	UserID     uuid.UUID
	Resource   resource.Resource
	ResourceID uuid.UUID
	Actions    []actions.Action
}

// NewGrant contains information needed to create a new grant.
type NewGrant struct {
	UserID     uuid.UUID
	Resource   resource.Resource
	ResourceID uuid.UUID
	Actions    []actions.Action
}

// UpdateGrant contains the replacement action set for an existing grant.
type UpdateGrant struct {
	Actions []actions.Action
}

// AccessCheck describes a permission question about a resource instance.
type AccessCheck struct {
	UserID     uuid.UUID
	Resource   resource.Resource
	ResourceID uuid.UUID
	Action     actions.Action
}
