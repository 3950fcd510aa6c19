// Package permdb contains grant related CRUD functionality.
package permdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb/dbarray"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for grant database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB value with a
// sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (permbus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new grant into the database.
func (s *Store) Create(ctx context.Context, g permbus.Grant) error {
	const q = `
	INSERT INTO document_grants
		(user_id, resource, resource_id, actions)
	VALUES
		(:user_id, :resource, :resource_id, :actions)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrant(g)); err != nil {
		var dup sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dup) {
			return fmt.Errorf("namedexeccontext: %w", permbus.ErrUnique)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces the action set of an existing grant.
func (s *Store) Update(ctx context.Context, g permbus.Grant) error {
	const q = `
	UPDATE
		document_grants
	SET
		actions = :actions
	WHERE
		user_id = :user_id AND resource_id = :resource_id AND resource = :resource`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrant(g)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes the grants of a user on a resource from the database.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID, resourceID uuid.UUID) error {
	data := struct {
		UserID     uuid.UUID `db:"user_id"`
		ResourceID uuid.UUID `db:"resource_id"`
	}{
		UserID:     userID,
		ResourceID: resourceID,
	}

	const q = `
	DELETE FROM
		document_grants
	WHERE
		user_id = :user_id AND resource_id = :resource_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryAll retrieves every grant defined in the system, used to warm the
// in-memory cache at startup.
func (s *Store) QueryAll(ctx context.Context) ([]permbus.Grant, error) {
	const q = `
	SELECT
		user_id, resource, resource_id, actions
	FROM
		document_grants`

	var dbGrants []grantDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, struct{}{}, &dbGrants); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusGrants(dbGrants)
}

// QueryAllUserRoles retrieves the global role of every user.
func (s *Store) QueryAllUserRoles(ctx context.Context) (map[uuid.UUID]role.Role, error) {
	const q = `
	SELECT
		user_id, role
	FROM
		users`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query user roles: %w", err)
	}
	defer rows.Close()

	userRoles := make(map[uuid.UUID]role.Role)

	for rows.Next() {
		var uid uuid.UUID
		var roleName string

		if err := rows.Scan(&uid, &roleName); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}

		r, err := role.Parse(roleName)
		if err != nil {
			return nil, fmt.Errorf("parse role %q: %w", roleName, err)
		}

		userRoles[uid] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return userRoles, nil
}

// ValidateAccess checks if the user holds a grant covering the action on the
// specific resource instance.
func (s *Store) ValidateAccess(ctx context.Context, check permbus.AccessCheck) error {
	const q = `
	SELECT
		count(1)
	FROM
		document_grants
	WHERE
		user_id = :user_id
		AND resource = :resource
		AND resource_id = :resource_id
		AND actions @> :actions`

	data := struct {
		UserID     uuid.UUID      `db:"user_id"`
		Resource   string         `db:"resource"`
		ResourceID uuid.UUID      `db:"resource_id"`
		Actions    dbarray.String `db:"actions"`
	}{
		UserID:     check.UserID,
		Resource:   check.Resource.String(),
		ResourceID: check.ResourceID,
		Actions:    dbarray.String{check.Action.String()},
	}

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &count); err != nil {
		return fmt.Errorf("namedquerystruct: %w", err)
	}

	if count.Count > 0 {
		return nil
	}

	return permbus.ErrAccessDenied
}

// SyncUserRole is a no-op for the database store. The role lives in the
// users table and is read fresh by QueryAllUserRoles; only the cache layer
// keeps derived state that needs syncing.
func (s *Store) SyncUserRole(ctx context.Context, userID uuid.UUID, r role.Role) error {
	return nil
}
