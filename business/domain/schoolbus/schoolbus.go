// Package schoolbus provides business access to schools, the tenants of the
// system, and to the membership rows that link users to them.
package schoolbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("school not found")
	ErrUniqueSlug         = errors.New("slug is not unique")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrUniqueMembership   = errors.New("membership already exists")
)

// Storer defines the behavior required by the schoolbus to interact with the
// database.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)

	Create(ctx context.Context, sch School) error
	Update(ctx context.Context, sch School) error
	Delete(ctx context.Context, sch School) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]School, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, schoolID uuid.UUID) (School, error)
	QueryIDBySlug(ctx context.Context, slug string) (uuid.UUID, error)

	AddMember(ctx context.Context, m Membership) error
	UpdateMember(ctx context.Context, m Membership) error
	QueryMembership(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID) (Membership, error)
	QueryMembers(ctx context.Context, schoolID uuid.UUID, orderBy order.By, page page.Page) ([]Membership, error)
	CountMembers(ctx context.Context, schoolID uuid.UUID) (int, error)
}

// Core manages the set of APIs for school access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for school api access.
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

// Create adds a new school to the system.
func (c *Core) Create(ctx context.Context, ns NewSchool) (School, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.create")
	defer span.End()

	now := time.Now()

	sch := School{
		ID:        uuid.New(),
		Name:      ns.Name,
		Slug:      ns.Slug,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, sch); err != nil {
		return School{}, fmt.Errorf("create: %w", err)
	}

	return sch, nil
}

// Update modifies data about a school.
func (c *Core) Update(ctx context.Context, sch School, us UpdateSchool) (School, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.update")
	defer span.End()

	if us.Name != nil {
		sch.Name = *us.Name
	}

	if us.Enabled != nil {
		sch.Enabled = *us.Enabled
	}

	sch.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, sch); err != nil {
		return School{}, fmt.Errorf("update: %w", err)
	}

	return sch, nil
}

// Delete removes the specified school from the system.
func (c *Core) Delete(ctx context.Context, sch School) error {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, sch); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing schools.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]School, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.query")
	defer span.End()

	schs, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return schs, nil
}

// Count returns the total number of schools.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the school by the specified ID.
func (c *Core) QueryByID(ctx context.Context, schoolID uuid.UUID) (School, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.querybyid")
	defer span.End()

	sch, err := c.storer.QueryByID(ctx, schoolID)
	if err != nil {
		return School{}, fmt.Errorf("query: schoolID[%s]: %w", schoolID, err)
	}

	return sch, nil
}

// QueryIDBySlug returns the school ID for the specified slug string.
func (c *Core) QueryIDBySlug(ctx context.Context, slug string) (uuid.UUID, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.queryidbyslug")
	defer span.End()

	id, err := c.storer.QueryIDBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, fmt.Errorf("query by slug[%s]: %w", slug, err)
	}

	return id, nil
}

// AddMember enrolls a user into a school with the specified role. New
// memberships start active.
func (c *Core) AddMember(ctx context.Context, nm NewMembership) (Membership, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.addmember")
	defer span.End()

	now := time.Now()

	m := Membership{
		UserID:    nm.UserID,
		SchoolID:  nm.SchoolID,
		Role:      nm.Role,
		Status:    memberstatus.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.AddMember(ctx, m); err != nil {
		return Membership{}, fmt.Errorf("addmember: %w", err)
	}

	return m, nil
}

// UpdateMember modifies the role or status of an existing membership.
func (c *Core) UpdateMember(ctx context.Context, m Membership, um UpdateMembership) (Membership, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.updatemember")
	defer span.End()

	if um.Role != nil {
		m.Role = *um.Role
	}

	if um.Status != nil {
		m.Status = *um.Status
	}

	m.UpdatedAt = time.Now()

	if err := c.storer.UpdateMember(ctx, m); err != nil {
		return Membership{}, fmt.Errorf("updatemember: %w", err)
	}

	return m, nil
}

// QueryMembership finds the membership row for the specified user and
// school pair. The result is always read fresh, membership can change
// between requests and access decisions depend on it.
func (c *Core) QueryMembership(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID) (Membership, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.querymembership")
	defer span.End()

	m, err := c.storer.QueryMembership(ctx, userID, schoolID)
	if err != nil {
		return Membership{}, fmt.Errorf("query: userID[%s] schoolID[%s]: %w", userID, schoolID, err)
	}

	return m, nil
}

// QueryMembers retrieves the memberships of a school.
func (c *Core) QueryMembers(ctx context.Context, schoolID uuid.UUID, orderBy order.By, page page.Page) ([]Membership, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.querymembers")
	defer span.End()

	ms, err := c.storer.QueryMembers(ctx, schoolID, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("querymembers: %w", err)
	}

	return ms, nil
}

// CountMembers returns the total number of memberships of a school.
func (c *Core) CountMembers(ctx context.Context, schoolID uuid.UUID) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.schoolbus.countmembers")
	defer span.End()

	return c.storer.CountMembers(ctx, schoolID)
}
