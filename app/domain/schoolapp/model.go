package schoolapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

// =============================================================================
// School (Output)
// =============================================================================

// School represents information about an individual school.
type School struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Enabled     bool   `json:"enabled"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (s School) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSchool(bus schoolbus.School) School {
	return School{
		ID:          bus.ID.String(),
		Name:        bus.Name.String(),
		Slug:        bus.Slug,
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppSchools(schools []schoolbus.School) []School {
	app := make([]School, len(schools))
	for i, sch := range schools {
		app[i] = toAppSchool(sch)
	}
	return app
}

// =============================================================================
// NewSchool (Input)
// =============================================================================

// NewSchool defines the data needed to add a new school.
type NewSchool struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,min=3,max=50"`
}

// Decode implements the web.Decoder interface.
func (app *NewSchool) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewSchool) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewSchool(app NewSchool) (schoolbus.NewSchool, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return schoolbus.NewSchool{}, fmt.Errorf("parse name: %w", err)
	}

	bus := schoolbus.NewSchool{
		Name: nme,
		Slug: app.Slug,
	}

	return bus, nil
}

// =============================================================================
// UpdateSchool (Input)
// =============================================================================

// UpdateSchool defines the data needed to update a school.
type UpdateSchool struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateSchool) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateSchool) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateSchool(app UpdateSchool) (schoolbus.UpdateSchool, error) {
	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return schoolbus.UpdateSchool{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	bus := schoolbus.UpdateSchool{
		Name:    nme,
		Enabled: app.Enabled,
	}

	return bus, nil
}

// =============================================================================
// Membership (Output)
// =============================================================================

// Membership represents a user's enrollment in a school.
type Membership struct {
	UserID      string `json:"userId"`
	SchoolID    string `json:"schoolId"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (m Membership) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMembership(bus schoolbus.Membership) Membership {
	return Membership{
		UserID:      bus.UserID.String(),
		SchoolID:    bus.SchoolID.String(),
		Role:        bus.Role.String(),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppMemberships(mems []schoolbus.Membership) []Membership {
	app := make([]Membership, len(mems))
	for i, mem := range mems {
		app[i] = toAppMembership(mem)
	}
	return app
}

// =============================================================================
// NewMembership (Input)
// =============================================================================

// NewMembership defines the data needed to enroll a user into a school.
type NewMembership struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *NewMembership) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewMembership) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewMembership(app NewMembership, schoolID uuid.UUID) (schoolbus.NewMembership, error) {
	userID, err := uuid.Parse(app.UserID)
	if err != nil {
		return schoolbus.NewMembership{}, fmt.Errorf("parse user id: %w", err)
	}

	r, err := schoolrole.Parse(app.Role)
	if err != nil {
		return schoolbus.NewMembership{}, fmt.Errorf("parse role: %w", err)
	}

	bus := schoolbus.NewMembership{
		UserID:   userID,
		SchoolID: schoolID,
		Role:     r,
	}

	return bus, nil
}

// =============================================================================
// UpdateMembership (Input)
// =============================================================================

// UpdateMembership defines the data needed to update a membership.
type UpdateMembership struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateMembership) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateMembership) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateMembership(app UpdateMembership) (schoolbus.UpdateMembership, error) {
	var r *schoolrole.Role
	if app.Role != nil {
		rl, err := schoolrole.Parse(*app.Role)
		if err != nil {
			return schoolbus.UpdateMembership{}, fmt.Errorf("parse role: %w", err)
		}
		r = &rl
	}

	var st *memberstatus.Status
	if app.Status != nil {
		s, err := memberstatus.Parse(*app.Status)
		if err != nil {
			return schoolbus.UpdateMembership{}, fmt.Errorf("parse status: %w", err)
		}
		st = &s
	}

	bus := schoolbus.UpdateMembership{
		Role:   r,
		Status: st,
	}

	return bus, nil
}
