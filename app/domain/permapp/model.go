package permapp

import (
	"encoding/json"
	"fmt"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/resource"
	"github.com/google/uuid"
)

// =============================================================================
// Grant (Output)
// =============================================================================

// Grant represents the actions a user may perform on a document.
type Grant struct {
	UserID     string   `json:"userId"`
	Resource   string   `json:"resource"`
	ResourceID string   `json:"resourceId"`
	Actions    []string `json:"actions"`
}

// Encode implements the web.Encoder interface.
func (g Grant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(g)
	return data, "application/json", err
}

func toAppGrant(bus permbus.Grant) Grant {
	acts := make([]string, len(bus.Actions))
	for i, act := range bus.Actions {
		acts[i] = act.String()
	}

	return Grant{
		UserID:     bus.UserID.String(),
		Resource:   bus.Resource.String(),
		ResourceID: bus.ResourceID.String(),
		Actions:    acts,
	}
}

// =============================================================================
// NewGrant (Input)
// =============================================================================

// NewGrant defines the data needed to add a new grant.
type NewGrant struct {
	UserID  string   `json:"userId" validate:"required"`
	Actions []string `json:"actions" validate:"required,min=1"`
}

// Decode implements the web.Decoder interface.
func (app *NewGrant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewGrant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewGrant(app NewGrant, documentID uuid.UUID) (permbus.NewGrant, error) {
	userID, err := uuid.Parse(app.UserID)
	if err != nil {
		return permbus.NewGrant{}, fmt.Errorf("parse user id: %w", err)
	}

	acts, err := parseActions(app.Actions)
	if err != nil {
		return permbus.NewGrant{}, err
	}

	bus := permbus.NewGrant{
		UserID:     userID,
		Resource:   resource.Document,
		ResourceID: documentID,
		Actions:    acts,
	}

	return bus, nil
}

// =============================================================================
// UpdateGrant (Input)
// =============================================================================

// UpdateGrant defines the replacement action set for an existing grant.
type UpdateGrant struct {
	Actions []string `json:"actions" validate:"required,min=1"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateGrant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateGrant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateGrant(app UpdateGrant, userID uuid.UUID, documentID uuid.UUID) (permbus.Grant, permbus.UpdateGrant, error) {
	acts, err := parseActions(app.Actions)
	if err != nil {
		return permbus.Grant{}, permbus.UpdateGrant{}, err
	}

	g := permbus.Grant{
		UserID:     userID,
		Resource:   resource.Document,
		ResourceID: documentID,
	}

	ug := permbus.UpdateGrant{
		Actions: acts,
	}

	return g, ug, nil
}

func parseActions(values []string) ([]actions.Action, error) {
	acts := make([]actions.Action, len(values))
	for i, value := range values {
		act, err := actions.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("parse action: %w", err)
		}
		acts[i] = act
	}
	return acts, nil
}
