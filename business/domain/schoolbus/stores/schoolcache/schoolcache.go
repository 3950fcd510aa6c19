// Package schoolcache contains school related CRUD functionality with caching.
// School records change rarely and are read on almost every request, so they
// are cached. Membership rows are never cached, access decisions must see
// revocations immediately.
package schoolcache

import (
	"context"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/viccon/sturdyc"
)

// Store manages the set of APIs for school data and caching.
type Store struct {
	log    *logger.Logger
	storer schoolbus.Storer
	cache  *sturdyc.Client[schoolbus.School]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer schoolbus.Storer, ttl time.Duration) *Store {
	const capacity = 10000
	const numShards = 10
	const evictionPercentage = 10

	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[schoolbus.School](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the storer value with a
// storer value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (schoolbus.Storer, error) {
	return s.storer.NewWithTx(tx)
}

// Create inserts a new school into the database.
func (s *Store) Create(ctx context.Context, sch schoolbus.School) error {
	if err := s.storer.Create(ctx, sch); err != nil {
		return err
	}

	s.writeCache(sch)

	return nil
}

// Update replaces a school document in the database.
func (s *Store) Update(ctx context.Context, sch schoolbus.School) error {
	if err := s.storer.Update(ctx, sch); err != nil {
		return err
	}

	s.writeCache(sch)

	return nil
}

// Delete removes a school from the database.
func (s *Store) Delete(ctx context.Context, sch schoolbus.School) error {
	if err := s.storer.Delete(ctx, sch); err != nil {
		return err
	}

	s.deleteCache(sch)

	return nil
}

// Query retrieves a list of existing schools from the database.
func (s *Store) Query(ctx context.Context, filter schoolbus.QueryFilter, orderBy order.By, page page.Page) ([]schoolbus.School, error) {
	return s.storer.Query(ctx, filter, orderBy, page)
}

// Count returns the total number of schools in the DB.
func (s *Store) Count(ctx context.Context, filter schoolbus.QueryFilter) (int, error) {
	return s.storer.Count(ctx, filter)
}

// QueryByID gets the specified school from the cache falling back to the
// database.
func (s *Store) QueryByID(ctx context.Context, schoolID uuid.UUID) (schoolbus.School, error) {
	if sch, ok := s.readCache(schoolID.String()); ok {
		return sch, nil
	}

	sch, err := s.storer.QueryByID(ctx, schoolID)
	if err != nil {
		return schoolbus.School{}, err
	}

	s.writeCache(sch)

	return sch, nil
}

// QueryIDBySlug gets the school ID for the specified slug from the cache
// falling back to the database.
func (s *Store) QueryIDBySlug(ctx context.Context, slug string) (uuid.UUID, error) {
	if sch, ok := s.readCache(slug); ok {
		return sch.ID, nil
	}

	id, err := s.storer.QueryIDBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, err
	}

	sch, err := s.storer.QueryByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	s.writeCache(sch)

	return id, nil
}

// AddMember inserts a new membership row into the database.
func (s *Store) AddMember(ctx context.Context, m schoolbus.Membership) error {
	return s.storer.AddMember(ctx, m)
}

// UpdateMember replaces a membership row in the database.
func (s *Store) UpdateMember(ctx context.Context, m schoolbus.Membership) error {
	return s.storer.UpdateMember(ctx, m)
}

// QueryMembership gets the membership row for the specified user and school.
// Always hits the database.
func (s *Store) QueryMembership(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID) (schoolbus.Membership, error) {
	return s.storer.QueryMembership(ctx, userID, schoolID)
}

// QueryMembers retrieves the membership rows of a school from the database.
func (s *Store) QueryMembers(ctx context.Context, schoolID uuid.UUID, orderBy order.By, page page.Page) ([]schoolbus.Membership, error) {
	return s.storer.QueryMembers(ctx, schoolID, orderBy, page)
}

// CountMembers returns the total number of membership rows of a school.
func (s *Store) CountMembers(ctx context.Context, schoolID uuid.UUID) (int, error) {
	return s.storer.CountMembers(ctx, schoolID)
}

// readCache performs a safe search in the cache for the specified key.
func (s *Store) readCache(key string) (schoolbus.School, bool) {
	sch, exists := s.cache.Get(key)
	if !exists {
		return schoolbus.School{}, false
	}

	return sch, true
}

// writeCache performs a safe write to the cache for the specified school,
// keyed by both ID and slug.
func (s *Store) writeCache(sch schoolbus.School) {
	s.cache.Set(sch.ID.String(), sch)
	s.cache.Set(sch.Slug, sch)
}

// deleteCache performs a safe removal from the cache for the specified school.
func (s *Store) deleteCache(sch schoolbus.School) {
	s.cache.Delete(sch.ID.String())
	s.cache.Delete(sch.Slug)
}
