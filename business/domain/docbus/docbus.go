// Package docbus provides business access to priced documents a school
// issues, with effective-date pricing windows.
package docbus

import (
	"context"
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

var (
	ErrNotFound      = errors.New("document not found")
	ErrConflict      = errors.New("pricing window overlaps an existing document")
	ErrInvalidWindow = errors.New("effective window is inverted")
)

// Storer defines the behavior required by the docbus to persist documents.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, doc Document) error
	Update(ctx context.Context, doc Document) error
	Delete(ctx context.Context, doc Document) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Document, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, documentID uuid.UUID) (Document, error)
	CountOverlapping(ctx context.Context, doc Document) (int, error)
}

// Core manages the set of APIs for document access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for document api access.
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

// Create adds a new priced document. A document whose pricing window
// overlaps an existing document with the same name in the same school is
// rejected with ErrConflict.
func (c *Core) Create(ctx context.Context, nd NewDocument) (Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.docbus.create")
	defer span.End()

	if nd.EffectiveTo != nil && nd.EffectiveTo.Before(nd.EffectiveFrom) {
		return Document{}, fmt.Errorf("from[%s] to[%s]: %w", nd.EffectiveFrom, nd.EffectiveTo, ErrInvalidWindow)
	}

	now := time.Now()

	doc := Document{
		ID:            uuid.New(),
		SchoolID:      nd.SchoolID,
		Name:          nd.Name,
		Price:         nd.Price,
		EffectiveFrom: nd.EffectiveFrom,
		EffectiveTo:   nd.EffectiveTo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	n, err := c.storer.CountOverlapping(ctx, doc)
	if err != nil {
		return Document{}, fmt.Errorf("countoverlapping: %w", err)
	}
	if n > 0 {
		return Document{}, ErrConflict
	}

	if err := c.storer.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create: %w", err)
	}

	return doc, nil
}

// Update modifies a document. Repricing that moves the effective window is
// subject to the same overlap check as Create.
func (c *Core) Update(ctx context.Context, doc Document, ud UpdateDocument) (Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.docbus.update")
	defer span.End()

	if ud.Name != nil {
		doc.Name = *ud.Name
	}

	if ud.Price != nil {
		doc.Price = *ud.Price
	}

	if ud.EffectiveFrom != nil {
		doc.EffectiveFrom = *ud.EffectiveFrom
	}

	if ud.EffectiveTo != nil {
		doc.EffectiveTo = ud.EffectiveTo
	}

	if doc.EffectiveTo != nil && doc.EffectiveTo.Before(doc.EffectiveFrom) {
		return Document{}, fmt.Errorf("from[%s] to[%s]: %w", doc.EffectiveFrom, doc.EffectiveTo, ErrInvalidWindow)
	}

	n, err := c.storer.CountOverlapping(ctx, doc)
	if err != nil {
		return Document{}, fmt.Errorf("countoverlapping: %w", err)
	}
	if n > 0 {
		return Document{}, ErrConflict
	}

	doc.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("update: %w", err)
	}

	return doc, nil
}

// Delete removes the specified document.
func (c *Core) Delete(ctx context.Context, doc Document) error {
	ctx, span := otel.AddSpan(ctx, "business.docbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, doc); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing documents.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.docbus.query")
	defer span.End()

	docs, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return docs, nil
}

// Count returns the total number of documents.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.docbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the document by the specified ID.
func (c *Core) QueryByID(ctx context.Context, documentID uuid.UUID) (Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.docbus.querybyid")
	defer span.End()

	doc, err := c.storer.QueryByID(ctx, documentID)
	if err != nil {
		return Document{}, fmt.Errorf("query: documentID[%s]: %w", documentID, err)
	}

	return doc, nil
}
