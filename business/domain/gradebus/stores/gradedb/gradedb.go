// Package gradedb contains grade related CRUD functionality.
package gradedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for grade database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (gradebus.Storer, error) {
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

// Create inserts a new grade into the database.
func (s *Store) Create(ctx context.Context, grd gradebus.Grade) error {
	const q = `
	INSERT INTO grades
		(grade_id, school_id, student_id, subject, assessment, score, max_score, created_at, updated_at)
	VALUES
		(:grade_id, :school_id, :student_id, :subject, :assessment, :score, :max_score, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrade(grd)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a grade document in the database.
func (s *Store) Update(ctx context.Context, grd gradebus.Grade) error {
	const q = `
	UPDATE
		grades
	SET
		"score" = :score,
		"max_score" = :max_score,
		"updated_at" = :updated_at
	WHERE
		grade_id = :grade_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrade(grd)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a grade from the database.
func (s *Store) Delete(ctx context.Context, grd gradebus.Grade) error {
	data := struct {
		ID string `db:"grade_id"`
	}{
		ID: grd.ID.String(),
	}

	const q = `
	DELETE FROM
		grades
	WHERE
		grade_id = :grade_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing grades from the database.
func (s *Store) Query(ctx context.Context, filter gradebus.QueryFilter, orderBy order.By, page page.Page) ([]gradebus.Grade, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		grade_id, school_id, student_id, subject, assessment, score, max_score, created_at, updated_at
	FROM
		grades`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	buf.WriteString(orderBy.Clause())
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbGrds []gradeDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbGrds); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusGrades(dbGrds), nil
}

// Count returns the total number of grades in the DB.
func (s *Store) Count(ctx context.Context, filter gradebus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		grades`

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

// QueryByID gets the specified grade from the database.
func (s *Store) QueryByID(ctx context.Context, gradeID uuid.UUID) (gradebus.Grade, error) {
	data := struct {
		ID string `db:"grade_id"`
	}{
		ID: gradeID.String(),
	}

	const q = `
	SELECT
		grade_id, school_id, student_id, subject, assessment, score, max_score, created_at, updated_at
	FROM
		grades
	WHERE
		grade_id = :grade_id`

	var dbGrd gradeDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbGrd); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return gradebus.Grade{}, fmt.Errorf("db: %w", gradebus.ErrNotFound)
		}
		return gradebus.Grade{}, fmt.Errorf("db: %w", err)
	}

	return toBusGrade(dbGrd), nil
}

// QueryByStudent gets all grades recorded for the specified student.
func (s *Store) QueryByStudent(ctx context.Context, studentID uuid.UUID) ([]gradebus.Grade, error) {
	data := struct {
		StudentID string `db:"student_id"`
	}{
		StudentID: studentID.String(),
	}

	const q = `
	SELECT
		grade_id, school_id, student_id, subject, assessment, score, max_score, created_at, updated_at
	FROM
		grades
	WHERE
		student_id = :student_id`

	var dbGrds []gradeDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbGrds); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusGrades(dbGrds), nil
}
