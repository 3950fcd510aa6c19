package docapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/google/uuid"
)

// =============================================================================
// Document (Output)
// =============================================================================

// Document represents a priced document a school issues.
type Document struct {
	ID            string  `json:"id"`
	SchoolID      string  `json:"schoolId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EffectiveFrom string  `json:"effectiveFrom"`
	EffectiveTo   string  `json:"effectiveTo,omitempty"`
	DateCreated   string  `json:"dateCreated"`
	DateUpdated   string  `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (d Document) Encode() ([]byte, string, error) {
	data, err := json.Marshal(d)
	return data, "application/json", err
}

func toAppDocument(bus docbus.Document) Document {
	var effectiveTo string
	if bus.EffectiveTo != nil {
		effectiveTo = bus.EffectiveTo.Format(time.RFC3339)
	}

	return Document{
		ID:            bus.ID.String(),
		SchoolID:      bus.SchoolID.String(),
		Name:          bus.Name,
		Price:         bus.Price,
		EffectiveFrom: bus.EffectiveFrom.Format(time.RFC3339),
		EffectiveTo:   effectiveTo,
		DateCreated:   bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:   bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppDocuments(docs []docbus.Document) []Document {
	app := make([]Document, len(docs))
	for i, doc := range docs {
		app[i] = toAppDocument(doc)
	}
	return app
}

// =============================================================================
// NewDocument (Input)
// =============================================================================

// NewDocument defines the data needed to add a new document.
type NewDocument struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"min=0"`
	EffectiveFrom string  `json:"effectiveFrom" validate:"required"`
	EffectiveTo   string  `json:"effectiveTo"`
}

// Decode implements the web.Decoder interface.
func (app *NewDocument) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewDocument) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewDocument(app NewDocument, schoolID uuid.UUID) (docbus.NewDocument, error) {
	from, err := time.Parse(time.RFC3339, app.EffectiveFrom)
	if err != nil {
		return docbus.NewDocument{}, fmt.Errorf("parse effective from: %w", err)
	}

	var to *time.Time
	if app.EffectiveTo != "" {
		t, err := time.Parse(time.RFC3339, app.EffectiveTo)
		if err != nil {
			return docbus.NewDocument{}, fmt.Errorf("parse effective to: %w", err)
		}
		to = &t
	}

	bus := docbus.NewDocument{
		SchoolID:      schoolID,
		Name:          app.Name,
		Price:         app.Price,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}

	return bus, nil
}

// =============================================================================
// UpdateDocument (Input)
// =============================================================================

// UpdateDocument defines the data needed to update a document.
type UpdateDocument struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price" validate:"omitempty,min=0"`
	EffectiveFrom *string  `json:"effectiveFrom"`
	EffectiveTo   *string  `json:"effectiveTo"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateDocument) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateDocument) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateDocument(app UpdateDocument) (docbus.UpdateDocument, error) {
	var from *time.Time
	if app.EffectiveFrom != nil {
		t, err := time.Parse(time.RFC3339, *app.EffectiveFrom)
		if err != nil {
			return docbus.UpdateDocument{}, fmt.Errorf("parse effective from: %w", err)
		}
		from = &t
	}

	var to *time.Time
	if app.EffectiveTo != nil {
		t, err := time.Parse(time.RFC3339, *app.EffectiveTo)
		if err != nil {
			return docbus.UpdateDocument{}, fmt.Errorf("parse effective to: %w", err)
		}
		to = &t
	}

	bus := docbus.UpdateDocument{
		Name:          app.Name,
		Price:         app.Price,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}

	return bus, nil
}
