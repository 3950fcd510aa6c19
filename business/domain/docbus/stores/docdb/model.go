package docdb

import (
	"database/sql"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/google/uuid"
)

type documentDB struct {
	ID            uuid.UUID    `db:"document_id"`
	SchoolID      uuid.UUID    `db:"school_id"`
	Name          string       `db:"name"`
	Price         float64      `db:"price"`
	EffectiveFrom time.Time    `db:"effective_from"`
	EffectiveTo   sql.NullTime `db:"effective_to"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

func toDBDocument(doc docbus.Document) documentDB {
	dbDoc := documentDB{
		ID:            doc.ID,
		SchoolID:      doc.SchoolID,
		Name:          doc.Name,
		Price:         doc.Price,
		EffectiveFrom: doc.EffectiveFrom.UTC(),
		CreatedAt:     doc.CreatedAt.UTC(),
		UpdatedAt:     doc.UpdatedAt.UTC(),
	}

	if doc.EffectiveTo != nil {
		dbDoc.EffectiveTo = sql.NullTime{Time: doc.EffectiveTo.UTC(), Valid: true}
	}

	return dbDoc
}

func toBusDocument(dbDoc documentDB) docbus.Document {
	doc := docbus.Document{
		ID:            dbDoc.ID,
		SchoolID:      dbDoc.SchoolID,
		Name:          dbDoc.Name,
		Price:         dbDoc.Price,
		EffectiveFrom: dbDoc.EffectiveFrom.In(time.Local),
		CreatedAt:     dbDoc.CreatedAt.In(time.Local),
		UpdatedAt:     dbDoc.UpdatedAt.In(time.Local),
	}

	if dbDoc.EffectiveTo.Valid {
		to := dbDoc.EffectiveTo.Time.In(time.Local)
		doc.EffectiveTo = &to
	}

	return doc
}

func toBusDocuments(dbDocs []documentDB) []docbus.Document {
	docs := make([]docbus.Document, len(dbDocs))
	for i, dbDoc := range dbDocs {
		docs[i] = toBusDocument(dbDoc)
	}

	return docs
}
