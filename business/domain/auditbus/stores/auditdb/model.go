package auditdb

import (
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/google/uuid"
)

type entryDB struct {
	ID        uuid.UUID `db:"entry_id"`
	SchoolID  uuid.UUID `db:"school_id"`
	ActorID   uuid.UUID `db:"actor_id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  uuid.UUID `db:"entity_id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBEntry(ent auditbus.Entry) entryDB {
	return entryDB{
		ID:        ent.ID,
		SchoolID:  ent.SchoolID,
		ActorID:   ent.ActorID,
		Action:    ent.Action.String(),
		Entity:    ent.Entity,
		EntityID:  ent.EntityID,
		Data:      ent.Data,
		CreatedAt: ent.CreatedAt.UTC(),
	}
}

func toBusEntry(dbEnt entryDB) (auditbus.Entry, error) {
	act, err := actions.Parse(dbEnt.Action)
	if err != nil {
		return auditbus.Entry{}, fmt.Errorf("parse action: %w", err)
	}

	ent := auditbus.Entry{
		ID:        dbEnt.ID,
		SchoolID:  dbEnt.SchoolID,
		ActorID:   dbEnt.ActorID,
		Action:    act,
		Entity:    dbEnt.Entity,
		EntityID:  dbEnt.EntityID,
		Data:      dbEnt.Data,
		CreatedAt: dbEnt.CreatedAt.In(time.Local),
	}

	return ent, nil
}

func toBusEntries(dbEnts []entryDB) ([]auditbus.Entry, error) {
	ents := make([]auditbus.Entry, len(dbEnts))

	for i, dbEnt := range dbEnts {
		ent, err := toBusEntry(dbEnt)
		if err != nil {
			return nil, err
		}
		ents[i] = ent
	}

	return ents, nil
}
