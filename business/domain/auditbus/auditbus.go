// Package auditbus provides business access to the append-only audit log.
// Entries are written by app layer mutations and never updated or deleted.
package auditbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("audit entry not found")

// Storer defines the behavior required by the auditbus to persist entries.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, ent Entry) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Entry, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
}

// Core manages the set of APIs for audit access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for audit api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		storer: storer,
		log:    log,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newwithtx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Create records a new audit entry. The data value is serialized to JSON
// for storage; a nil data records an empty object.
func (c *Core) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.create")
	defer span.End()

	data := []byte("{}")
	if ne.Data != nil {
		var err error
		data, err = json.Marshal(ne.Data)
		if err != nil {
			return Entry{}, fmt.Errorf("marshal data: %w", err)
		}
	}

	ent := Entry{
		ID:        uuid.New(),
		SchoolID:  ne.SchoolID,
		ActorID:   ne.ActorID,
		Action:    ne.Action,
		Entity:    ne.Entity,
		EntityID:  ne.EntityID,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := c.storer.Create(ctx, ent); err != nil {
		return Entry{}, fmt.Errorf("create: %w", err)
	}

	return ent, nil
}

// Query retrieves a list of audit entries.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.query")
	defer span.End()

	ents, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return ents, nil
}

// Count returns the total number of audit entries.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}
