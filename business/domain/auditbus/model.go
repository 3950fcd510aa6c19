package auditbus

import (
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/google/uuid"
)

// Entry represents a single recorded mutation.
type Entry struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	ActorID   uuid.UUID
	Action    actions.Action
	Entity    string
	EntityID  uuid.UUID
	Data      []byte
	CreatedAt time.Time
}

// NewEntry contains information needed to record an audit entry. Data may be
// any JSON-serializable value describing the mutation.
type NewEntry struct {
	SchoolID uuid.UUID
	ActorID  uuid.UUID
	Action   actions.Action
	Entity   string
	EntityID uuid.UUID
	Data     any
}
