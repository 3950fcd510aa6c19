package permdb

import (
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb/dbarray"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/resource"
	"github.com/google/uuid"
)

type grantDB struct {
	UserID     uuid.UUID      `db:"user_id"`
	Resource   string         `db:"resource"`
	ResourceID uuid.UUID      `db:"resource_id"`
	Actions    dbarray.String `db:"actions"`
}

func toDBGrant(g permbus.Grant) grantDB {
	acts := make(dbarray.String, len(g.Actions))
	for i, act := range g.Actions {
		acts[i] = act.String()
	}

	return grantDB{
		UserID:     g.UserID,
		Resource:   g.Resource.String(),
		ResourceID: g.ResourceID,
		Actions:    acts,
	}
}

func toBusGrant(dbG grantDB) (permbus.Grant, error) {
	res, err := resource.Parse(dbG.Resource)
	if err != nil {
		return permbus.Grant{}, fmt.Errorf("parse resource: %w", err)
	}

	acts := make([]actions.Action, len(dbG.Actions))
	for i, raw := range dbG.Actions {
		act, err := actions.Parse(raw)
		if err != nil {
			return permbus.Grant{}, fmt.Errorf("parse action: %w", err)
		}
		acts[i] = act
	}

	g := permbus.Grant{
		UserID:     dbG.UserID,
		Resource:   res,
		ResourceID: dbG.ResourceID,
		Actions:    acts,
	}

	return g, nil
}

func toBusGrants(dbGs []grantDB) ([]permbus.Grant, error) {
	gs := make([]permbus.Grant, len(dbGs))

	for i, dbG := range dbGs {
		g, err := toBusGrant(dbG)
		if err != nil {
			return nil, err
		}
		gs[i] = g
	}

	return gs, nil
}
