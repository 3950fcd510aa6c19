// Package accessbus decides whether a user may act inside a school. The
// decision is computed from current user and membership state on every call
// and is never cached.
package accessbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the requesting user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrForbidden is returned for every denial past user lookup. The reason
	// is carried in the wrapped message for logs, clients only see a 403.
	ErrForbidden = errors.New("access denied")
)

// UserReader declares the user lookup the guard depends on.
type UserReader interface {
	QueryByID(ctx context.Context, userID uuid.UUID) (userbus.User, error)
}

// MembershipReader declares the membership lookup the guard depends on.
type MembershipReader interface {
	QueryMembership(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID) (schoolbus.Membership, error)
}

// Core manages the school access decision.
type Core struct {
	users   UserReader
	members MembershipReader
}

// NewCore constructs a core for access decisions.
func NewCore(users UserReader, members MembershipReader) *Core {
	return &Core{
		users:   users,
		members: members,
	}
}

// Authorize checks if the specified user may operate on the specified school.
// A user with a privileged global role is allowed into any school without a
// membership. Everyone else needs an active membership, and when allowedRoles
// is not empty, a membership role contained in it. An empty allowedRoles set
// admits any active member.
func (c *Core) Authorize(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID, allowedRoles ...schoolrole.Role) error {
	ctx, span := otel.AddSpan(ctx, "business.accessbus.authorize")
	defer span.End()

	usr, err := c.users.QueryByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("query user: userID[%s]: %w", userID, err)
	}

	if !usr.Enabled {
		return fmt.Errorf("user disabled: userID[%s]: %w", userID, ErrForbidden)
	}

	if usr.Role.IsPrivileged() {
		return nil
	}

	m, err := c.members.QueryMembership(ctx, userID, schoolID)
	if err != nil {
		if errors.Is(err, schoolbus.ErrMembershipNotFound) {
			return fmt.Errorf("no membership: userID[%s] schoolID[%s]: %w", userID, schoolID, ErrForbidden)
		}
		return fmt.Errorf("query membership: userID[%s] schoolID[%s]: %w", userID, schoolID, err)
	}

	if !m.Status.Equal(memberstatus.Active) {
		return fmt.Errorf("membership not active: status[%s]: %w", m.Status, ErrForbidden)
	}

	if len(allowedRoles) == 0 {
		return nil
	}

	for _, r := range allowedRoles {
		if m.Role.Equal(r) {
			return nil
		}
	}

	return fmt.Errorf("role not allowed: role[%s]: %w", m.Role, ErrForbidden)
}
