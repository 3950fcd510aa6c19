package docapp

import (
	"net/http"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/google/uuid"
)

type queryParams struct {
	Page        string
	Rows        string
	OrderBy     string
	Direction   string
	ID          string
	Name        string
	EffectiveOn string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:        values.Get("page"),
		Rows:        values.Get("rows"),
		OrderBy:     values.Get("orderBy"),
		Direction:   values.Get("direction"),
		ID:          values.Get("document_id"),
		Name:        values.Get("name"),
		EffectiveOn: values.Get("effective_on"),
	}
}

// parseFilter validates the raw query values and converts them into the
// domain filter. The school is bound by the handler, not by the caller.
func parseFilter(qp queryParams) (docbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter docbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("document_id", err)
		}
	}

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	if qp.EffectiveOn != "" {
		t, err := time.Parse(time.RFC3339, qp.EffectiveOn)
		switch err {
		case nil:
			filter.EffectiveOn = &t
		default:
			fieldErrors.Add("effective_on", err)
		}
	}

	if fieldErrors != nil {
		return docbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
