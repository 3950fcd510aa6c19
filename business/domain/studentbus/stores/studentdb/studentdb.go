// Package studentdb contains student related CRUD functionality.
package studentdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for student database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (studentbus.Storer, error) {
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

// Create inserts a new student into the database.
func (s *Store) Create(ctx context.Context, std studentbus.Student) error {
	const q = `
	INSERT INTO students
		(student_id, school_id, user_id, name, admission_no, year_level, enabled, created_at, updated_at)
	VALUES
		(:student_id, :school_id, :user_id, :name, :admission_no, :year_level, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBStudent(std)); err != nil {
		var dup sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dup) {
			return fmt.Errorf("namedexeccontext: %w", studentbus.ErrUniqueAdmissionNo)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a student document in the database.
func (s *Store) Update(ctx context.Context, std studentbus.Student) error {
	const q = `
	UPDATE
		students
	SET
		"name" = :name,
		"year_level" = :year_level,
		"enabled" = :enabled,
		"updated_at" = :updated_at
	WHERE
		student_id = :student_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBStudent(std)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a student from the database.
func (s *Store) Delete(ctx context.Context, std studentbus.Student) error {
	data := struct {
		ID string `db:"student_id"`
	}{
		ID: std.ID.String(),
	}

	const q = `
	DELETE FROM
		students
	WHERE
		student_id = :student_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing students from the database.
func (s *Store) Query(ctx context.Context, filter studentbus.QueryFilter, orderBy order.By, page page.Page) ([]studentbus.Student, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		student_id, school_id, user_id, name, admission_no, year_level, enabled, created_at, updated_at
	FROM
		students`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	buf.WriteString(orderBy.Clause())
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbStds []studentDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbStds); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusStudents(dbStds)
}

// Count returns the total number of students in the DB.
func (s *Store) Count(ctx context.Context, filter studentbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		students`

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

// QueryByID gets the specified student from the database.
func (s *Store) QueryByID(ctx context.Context, studentID uuid.UUID) (studentbus.Student, error) {
	data := struct {
		ID string `db:"student_id"`
	}{
		ID: studentID.String(),
	}

	const q = `
	SELECT
		student_id, school_id, user_id, name, admission_no, year_level, enabled, created_at, updated_at
	FROM
		students
	WHERE
		student_id = :student_id`

	var dbStd studentDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbStd); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return studentbus.Student{}, fmt.Errorf("db: %w", studentbus.ErrNotFound)
		}
		return studentbus.Student{}, fmt.Errorf("db: %w", err)
	}

	return toBusStudent(dbStd)
}
