package auditapp

import (
	"encoding/json"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
)

// Entry represents a single recorded mutation.
type Entry struct {
	ID          string          `json:"id"`
	SchoolID    string          `json:"schoolId"`
	ActorID     string          `json:"actorId"`
	Action      string          `json:"action"`
	Entity      string          `json:"entity"`
	EntityID    string          `json:"entityId"`
	Data        json.RawMessage `json:"data"`
	DateCreated string          `json:"dateCreated"`
}

// Encode implements the web.Encoder interface.
func (e Entry) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func toAppEntry(bus auditbus.Entry) Entry {
	return Entry{
		ID:          bus.ID.String(),
		SchoolID:    bus.SchoolID.String(),
		ActorID:     bus.ActorID.String(),
		Action:      bus.Action.String(),
		Entity:      bus.Entity,
		EntityID:    bus.EntityID.String(),
		Data:        json.RawMessage(bus.Data),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppEntries(ents []auditbus.Entry) []Entry {
	app := make([]Entry, len(ents))
	for i, ent := range ents {
		app[i] = toAppEntry(ent)
	}
	return app
}
