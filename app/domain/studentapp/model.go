package studentapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

// =============================================================================
// Student (Output)
// =============================================================================

// Student represents information about an individual student.
type Student struct {
	ID          string `json:"id"`
	SchoolID    string `json:"schoolId"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name"`
	AdmissionNo string `json:"admissionNo"`
	YearLevel   int    `json:"yearLevel"`
	Enabled     bool   `json:"enabled"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (s Student) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppStudent(bus studentbus.Student) Student {
	var userID string
	if bus.UserID != uuid.Nil {
		userID = bus.UserID.String()
	}

	return Student{
		ID:          bus.ID.String(),
		SchoolID:    bus.SchoolID.String(),
		UserID:      userID,
		Name:        bus.Name.String(),
		AdmissionNo: bus.AdmissionNo,
		YearLevel:   bus.YearLevel,
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppStudents(stds []studentbus.Student) []Student {
	app := make([]Student, len(stds))
	for i, std := range stds {
		app[i] = toAppStudent(std)
	}
	return app
}

// =============================================================================
// NewStudent (Input)
// =============================================================================

// NewStudent defines the data needed to add a new student.
type NewStudent struct {
	UserID      string `json:"userId"`
	Name        string `json:"name" validate:"required"`
	AdmissionNo string `json:"admissionNo" validate:"required"`
	YearLevel   int    `json:"yearLevel" validate:"required,min=1,max=13"`
}

// Decode implements the web.Decoder interface.
func (app *NewStudent) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewStudent) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewStudent(app NewStudent, schoolID uuid.UUID) (studentbus.NewStudent, error) {
	userID := uuid.Nil
	if app.UserID != "" {
		var err error
		userID, err = uuid.Parse(app.UserID)
		if err != nil {
			return studentbus.NewStudent{}, fmt.Errorf("parse user id: %w", err)
		}
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return studentbus.NewStudent{}, fmt.Errorf("parse name: %w", err)
	}

	bus := studentbus.NewStudent{
		SchoolID:    schoolID,
		UserID:      userID,
		Name:        nme,
		AdmissionNo: app.AdmissionNo,
		YearLevel:   app.YearLevel,
	}

	return bus, nil
}

// =============================================================================
// UpdateStudent (Input)
// =============================================================================

// UpdateStudent defines the data needed to update a student.
type UpdateStudent struct {
	Name      *string `json:"name"`
	YearLevel *int    `json:"yearLevel" validate:"omitempty,min=1,max=13"`
	Enabled   *bool   `json:"enabled"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateStudent) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateStudent) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateStudent(app UpdateStudent) (studentbus.UpdateStudent, error) {
	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return studentbus.UpdateStudent{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	bus := studentbus.UpdateStudent{
		Name:      nme,
		YearLevel: app.YearLevel,
		Enabled:   app.Enabled,
	}

	return bus, nil
}
