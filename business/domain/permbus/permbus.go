// Package permbus provides business access to fine-grained per-user grants
// on documents and other school resources. Grants complement the school
// membership guard: the guard decides who may enter a school, grants decide
// what a member may do to a specific resource.
package permbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/google/uuid"
)

var (
	ErrUnique       = errors.New("grant already exists")
	ErrAccessDenied = errors.New("access denied")
)

// Storer defines the behavior required by the permbus to persist grants and
// answer access checks.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, g Grant) error
	Update(ctx context.Context, g Grant) error
	Delete(ctx context.Context, userID uuid.UUID, resourceID uuid.UUID) error
	QueryAll(ctx context.Context) ([]Grant, error)
	QueryAllUserRoles(ctx context.Context) (map[uuid.UUID]role.Role, error)
	ValidateAccess(ctx context.Context, check AccessCheck) error
	SyncUserRole(ctx context.Context, userID uuid.UUID, r role.Role) error
}

// Core manages the set of APIs for grant access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for grant api access.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newwithtx: %w", err)
	}

	return NewCore(storer), nil
}

// Create adds a new grant for a user on a resource.
func (c *Core) Create(ctx context.Context, ng NewGrant) (Grant, error) {
	ctx, span := otel.AddSpan(ctx, "business.permbus.create")
	defer span.End()

	g := Grant{
		UserID:     ng.UserID,
		Resource:   ng.Resource,
		ResourceID: ng.ResourceID,
		Actions:    ng.Actions,
	}

	if err := c.storer.Create(ctx, g); err != nil {
		return Grant{}, fmt.Errorf("create: %w", err)
	}

	return g, nil
}

// Update replaces the action set of an existing grant.
func (c *Core) Update(ctx context.Context, g Grant, ug UpdateGrant) (Grant, error) {
	ctx, span := otel.AddSpan(ctx, "business.permbus.update")
	defer span.End()

	g.Actions = ug.Actions

	if err := c.storer.Update(ctx, g); err != nil {
		return Grant{}, fmt.Errorf("update: %w", err)
	}

	return g, nil
}

// Delete removes every grant the user holds on the specified resource.
func (c *Core) Delete(ctx context.Context, userID uuid.UUID, resourceID uuid.UUID) error {
	ctx, span := otel.AddSpan(ctx, "business.permbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, userID, resourceID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// ValidateAccess checks if the user may perform the action on the specific
// resource instance. Returns ErrAccessDenied when no grant covers it.
func (c *Core) ValidateAccess(ctx context.Context, check AccessCheck) error {
	ctx, span := otel.AddSpan(ctx, "business.permbus.validateaccess")
	defer span.End()

	if err := c.storer.ValidateAccess(ctx, check); err != nil {
		return fmt.Errorf("validateaccess: %w", err)
	}

	return nil
}

// SyncUserRole propagates a global role change into the permission layer so
// privileged bypasses take effect immediately.
func (c *Core) SyncUserRole(ctx context.Context, userID uuid.UUID, r role.Role) error {
	ctx, span := otel.AddSpan(ctx, "business.permbus.syncuserrole")
	defer span.End()

	if err := c.storer.SyncUserRole(ctx, userID, r); err != nil {
		return fmt.Errorf("syncuserrole: %w", err)
	}

	return nil
}
