// Package permcache wraps the grant store with an in-memory casbin enforcer
// used as a write-through cache. Reads answered from memory fall back to the
// database on a miss, and a confirmed grant repairs the cache.
package permcache

import (
	"context"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
)

// Store implements the permbus.Storer interface with a write-through cache.
type Store struct {
	log    *logger.Logger
	storer permbus.Storer
	cache  *memoryCache
}

// NewStore constructs the cached store and warms it from the database.
func NewStore(log *logger.Logger, storer permbus.Storer) (*Store, error) {
	mem, err := newMemoryCache(log)
	if err != nil {
		return nil, err
	}

	s := &Store{
		log:    log,
		storer: storer,
		cache:  mem,
	}

	// Startup runs outside of any request.
	if err := s.syncCache(context.Background()); err != nil {
		return nil, fmt.Errorf("sync cache: %w", err)
	}

	return s, nil
}

// NewWithTx constructs a new Store value replacing the wrapped storer with
// one that is currently inside a transaction. The memory cache is shared.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (permbus.Storer, error) {
	storer, err := s.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return &Store{
		log:    s.log,
		storer: storer,
		cache:  s.cache,
	}, nil
}

// Create writes the grant through to the database and the cache.
func (s *Store) Create(ctx context.Context, g permbus.Grant) error {
	if err := s.storer.Create(ctx, g); err != nil {
		return err
	}

	for _, act := range g.Actions {
		s.cache.add(ctx, g.UserID, g.Resource, g.ResourceID, act)
	}

	return nil
}

// Update replaces the grant in the database and rebuilds its cache rules.
func (s *Store) Update(ctx context.Context, g permbus.Grant) error {
	if err := s.storer.Update(ctx, g); err != nil {
		return err
	}

	s.cache.clearInstanceRules(ctx, g.UserID, g.ResourceID)

	for _, act := range g.Actions {
		s.cache.add(ctx, g.UserID, g.Resource, g.ResourceID, act)
	}

	return nil
}

// Delete removes the grants from the database and the cache.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID, resourceID uuid.UUID) error {
	if err := s.storer.Delete(ctx, userID, resourceID); err != nil {
		return err
	}

	s.cache.clearInstanceRules(ctx, userID, resourceID)

	return nil
}

// QueryAll retrieves every grant from the database.
func (s *Store) QueryAll(ctx context.Context) ([]permbus.Grant, error) {
	return s.storer.QueryAll(ctx)
}

// QueryAllUserRoles retrieves the global role of every user.
func (s *Store) QueryAllUserRoles(ctx context.Context) (map[uuid.UUID]role.Role, error) {
	return s.storer.QueryAllUserRoles(ctx)
}

// ValidateAccess answers the check from memory first, falling back to the
// database and repairing the cache on a confirmed grant.
func (s *Store) ValidateAccess(ctx context.Context, check permbus.AccessCheck) error {
	if err := s.cache.check(ctx, check.UserID, check.Resource, check.ResourceID, check.Action); err == nil {
		return nil
	}

	if err := s.storer.ValidateAccess(ctx, check); err != nil {
		return err
	}

	s.log.Info(ctx, "permcache: miss repaired", "user_id", check.UserID, "resource_id", check.ResourceID)
	s.cache.add(ctx, check.UserID, check.Resource, check.ResourceID, check.Action)

	return nil
}

// SyncUserRole updates the enforcer so the new global role takes effect
// without a restart.
func (s *Store) SyncUserRole(ctx context.Context, userID uuid.UUID, r role.Role) error {
	if err := s.storer.SyncUserRole(ctx, userID, r); err != nil {
		return err
	}

	s.cache.setUserRole(ctx, userID, r)

	return nil
}

func (s *Store) syncCache(ctx context.Context) error {
	userRoles, err := s.storer.QueryAllUserRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetch user roles: %w", err)
	}

	s.cache.loadRoles(ctx, userRoles)

	grants, err := s.storer.QueryAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch grants: %w", err)
	}

	for _, g := range grants {
		for _, act := range g.Actions {
			s.cache.add(ctx, g.UserID, g.Resource, g.ResourceID, act)
		}
	}

	return nil
}
