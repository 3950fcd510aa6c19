// Package docdb contains document related CRUD functionality.
package docdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for document database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (docbus.Storer, error) {
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

// Create inserts a new document into the database.
func (s *Store) Create(ctx context.Context, doc docbus.Document) error {
	const q = `
	INSERT INTO documents
		(document_id, school_id, name, price, effective_from, effective_to, created_at, updated_at)
	VALUES
		(:document_id, :school_id, :name, :price, :effective_from, :effective_to, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBDocument(doc)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a document in the database.
func (s *Store) Update(ctx context.Context, doc docbus.Document) error {
	const q = `
	UPDATE
		documents
	SET
		"name" = :name,
		"price" = :price,
		"effective_from" = :effective_from,
		"effective_to" = :effective_to,
		"updated_at" = :updated_at
	WHERE
		document_id = :document_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBDocument(doc)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a document from the database.
func (s *Store) Delete(ctx context.Context, doc docbus.Document) error {
	data := struct {
		ID string `db:"document_id"`
	}{
		ID: doc.ID.String(),
	}

	const q = `
	DELETE FROM
		documents
	WHERE
		document_id = :document_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing documents from the database.
func (s *Store) Query(ctx context.Context, filter docbus.QueryFilter, orderBy order.By, page page.Page) ([]docbus.Document, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		document_id, school_id, name, price, effective_from, effective_to, created_at, updated_at
	FROM
		documents`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	buf.WriteString(orderBy.Clause())
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbDocs []documentDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbDocs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusDocuments(dbDocs), nil
}

// Count returns the total number of documents in the DB.
func (s *Store) Count(ctx context.Context, filter docbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		documents`

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

// QueryByID gets the specified document from the database.
func (s *Store) QueryByID(ctx context.Context, documentID uuid.UUID) (docbus.Document, error) {
	data := struct {
		ID string `db:"document_id"`
	}{
		ID: documentID.String(),
	}

	const q = `
	SELECT
		document_id, school_id, name, price, effective_from, effective_to, created_at, updated_at
	FROM
		documents
	WHERE
		document_id = :document_id`

	var dbDoc documentDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbDoc); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return docbus.Document{}, fmt.Errorf("db: %w", docbus.ErrNotFound)
		}
		return docbus.Document{}, fmt.Errorf("db: %w", err)
	}

	return toBusDocument(dbDoc), nil
}

// CountOverlapping counts documents with the same name in the same school
// whose effective window intersects the window of the specified document,
// excluding the document itself. A NULL effective_to means open-ended.
func (s *Store) CountOverlapping(ctx context.Context, doc docbus.Document) (int, error) {
	dbDoc := toDBDocument(doc)

	const q = `
	SELECT
		count(1)
	FROM
		documents
	WHERE
		document_id <> :document_id
		AND school_id = :school_id
		AND name = :name
		AND (CAST(:effective_to AS timestamp) IS NULL OR effective_from <= :effective_to)
		AND (effective_to IS NULL OR effective_to >= :effective_from)`

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, dbDoc, &count); err != nil {
		return 0, fmt.Errorf("namedquerystruct: %w", err)
	}

	return count.Count, nil
}
