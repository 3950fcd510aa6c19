package auditapp

import (
	"net/http"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/google/uuid"
)

type queryParams struct {
	Page             string
	Rows             string
	OrderBy          string
	Direction        string
	ActorID          string
	Action           string
	Entity           string
	EntityID         string
	StartCreatedDate string
	EndCreatedDate   string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:             values.Get("page"),
		Rows:             values.Get("rows"),
		OrderBy:          values.Get("orderBy"),
		Direction:        values.Get("direction"),
		ActorID:          values.Get("actor_id"),
		Action:           values.Get("action"),
		Entity:           values.Get("entity"),
		EntityID:         values.Get("entity_id"),
		StartCreatedDate: values.Get("start_created_date"),
		EndCreatedDate:   values.Get("end_created_date"),
	}
}

// parseFilter validates the raw query values and converts them into the
// domain filter. The school is bound by the handler, not by the caller.
func parseFilter(qp queryParams) (auditbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter auditbus.QueryFilter

	if qp.ActorID != "" {
		id, err := uuid.Parse(qp.ActorID)
		switch err {
		case nil:
			filter.ActorID = &id
		default:
			fieldErrors.Add("actor_id", err)
		}
	}

	if qp.Action != "" {
		act, err := actions.Parse(qp.Action)
		switch err {
		case nil:
			filter.Action = &act
		default:
			fieldErrors.Add("action", err)
		}
	}

	if qp.Entity != "" {
		filter.Entity = &qp.Entity
	}

	if qp.EntityID != "" {
		id, err := uuid.Parse(qp.EntityID)
		switch err {
		case nil:
			filter.EntityID = &id
		default:
			fieldErrors.Add("entity_id", err)
		}
	}

	if qp.StartCreatedDate != "" {
		t, err := time.Parse(time.RFC3339, qp.StartCreatedDate)
		switch err {
		case nil:
			filter.StartCreatedAt = &t
		default:
			fieldErrors.Add("start_created_date", err)
		}
	}

	if qp.EndCreatedDate != "" {
		t, err := time.Parse(time.RFC3339, qp.EndCreatedDate)
		switch err {
		case nil:
			filter.EndCreatedAt = &t
		default:
			fieldErrors.Add("end_created_date", err)
		}
	}

	if fieldErrors != nil {
		return auditbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
