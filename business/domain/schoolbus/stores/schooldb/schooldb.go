// Package schooldb contains school and membership related CRUD functionality.
package schooldb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for school database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (schoolbus.Storer, error) {
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

// Create inserts a new school into the database.
func (s *Store) Create(ctx context.Context, sch schoolbus.School) error {
	const q = `
	INSERT INTO schools
		(school_id, name, slug, enabled, created_at, updated_at)
	VALUES
		(:school_id, :name, :slug, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBSchool(sch)); err != nil {
		var dup sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dup) {
			return fmt.Errorf("namedexeccontext: %w", schoolbus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a school document in the database.
func (s *Store) Update(ctx context.Context, sch schoolbus.School) error {
	const q = `
	UPDATE
		schools
	SET
		"name" = :name,
		"enabled" = :enabled,
		"updated_at" = :updated_at
	WHERE
		school_id = :school_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBSchool(sch)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a school from the database.
func (s *Store) Delete(ctx context.Context, sch schoolbus.School) error {
	data := struct {
		ID string `db:"school_id"`
	}{
		ID: sch.ID.String(),
	}

	const q = `
	DELETE FROM
		schools
	WHERE
		school_id = :school_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing schools from the database.
func (s *Store) Query(ctx context.Context, filter schoolbus.QueryFilter, orderBy order.By, page page.Page) ([]schoolbus.School, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		school_id, name, slug, enabled, created_at, updated_at
	FROM
		schools`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	buf.WriteString(orderBy.Clause())
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbSchs []schoolDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbSchs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusSchools(dbSchs)
}

// Count returns the total number of schools in the DB.
func (s *Store) Count(ctx context.Context, filter schoolbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		schools`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("namedquerystruct: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified school from the database.
func (s *Store) QueryByID(ctx context.Context, schoolID uuid.UUID) (schoolbus.School, error) {
	data := struct {
		ID string `db:"school_id"`
	}{
		ID: schoolID.String(),
	}

	const q = `
	SELECT
		school_id, name, slug, enabled, created_at, updated_at
	FROM
		schools
	WHERE
		school_id = :school_id`

	var dbSch schoolDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbSch); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return schoolbus.School{}, fmt.Errorf("db: %w", schoolbus.ErrNotFound)
		}
		return schoolbus.School{}, fmt.Errorf("db: %w", err)
	}

	return toBusSchool(dbSch)
}

// QueryIDBySlug gets the school ID for the specified slug.
func (s *Store) QueryIDBySlug(ctx context.Context, slug string) (uuid.UUID, error) {
	data := struct {
		Slug string `db:"slug"`
	}{
		Slug: slug,
	}

	const q = `
	SELECT
		school_id
	FROM
		schools
	WHERE
		slug = :slug`

	var row struct {
		ID uuid.UUID `db:"school_id"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &row); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return uuid.Nil, fmt.Errorf("db: %w", schoolbus.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("db: %w", err)
	}

	return row.ID, nil
}

// AddMember inserts a new membership row into the database.
func (s *Store) AddMember(ctx context.Context, m schoolbus.Membership) error {
	const q = `
	INSERT INTO school_members
		(user_id, school_id, role, status, created_at, updated_at)
	VALUES
		(:user_id, :school_id, :role, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBMembership(m)); err != nil {
		var dup sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dup) {
			return fmt.Errorf("namedexeccontext: %w", schoolbus.ErrUniqueMembership)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// UpdateMember replaces a membership row in the database.
func (s *Store) UpdateMember(ctx context.Context, m schoolbus.Membership) error {
	const q = `
	UPDATE
		school_members
	SET
		"role" = :role,
		"status" = :status,
		"updated_at" = :updated_at
	WHERE
		user_id = :user_id AND school_id = :school_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBMembership(m)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryMembership gets the membership row for the specified user and school.
func (s *Store) QueryMembership(ctx context.Context, userID uuid.UUID, schoolID uuid.UUID) (schoolbus.Membership, error) {
	data := struct {
		UserID   string `db:"user_id"`
		SchoolID string `db:"school_id"`
	}{
		UserID:   userID.String(),
		SchoolID: schoolID.String(),
	}

	const q = `
	SELECT
		user_id, school_id, role, status, created_at, updated_at
	FROM
		school_members
	WHERE
		user_id = :user_id AND school_id = :school_id`

	var dbM membershipDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbM); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return schoolbus.Membership{}, fmt.Errorf("db: %w", schoolbus.ErrMembershipNotFound)
		}
		return schoolbus.Membership{}, fmt.Errorf("db: %w", err)
	}

	return toBusMembership(dbM)
}

// QueryMembers retrieves the membership rows of a school from the database.
func (s *Store) QueryMembers(ctx context.Context, schoolID uuid.UUID, orderBy order.By, page page.Page) ([]schoolbus.Membership, error) {
	data := map[string]any{
		"school_id":     schoolID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		user_id, school_id, role, status, created_at, updated_at
	FROM
		school_members
	WHERE
		school_id = :school_id`

	buf := bytes.NewBufferString(q)
	buf.WriteString(orderBy.Clause())
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbMs []membershipDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbMs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusMemberships(dbMs)
}

// CountMembers returns the total number of membership rows of a school.
func (s *Store) CountMembers(ctx context.Context, schoolID uuid.UUID) (int, error) {
	data := struct {
		SchoolID string `db:"school_id"`
	}{
		SchoolID: schoolID.String(),
	}

	const q = `
	SELECT
		count(1)
	FROM
		school_members
	WHERE
		school_id = :school_id`

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &count); err != nil {
		return 0, fmt.Errorf("namedquerystruct: %w", err)
	}

	return count.Count, nil
}
