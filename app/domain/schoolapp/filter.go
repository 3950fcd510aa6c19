package schoolapp

import (
	"net/http"
	"strconv"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

type queryParams struct {
	Page      string
	Rows      string
	OrderBy   string
	Direction string
	ID        string
	Name      string
	Slug      string
	Enabled   string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:      values.Get("page"),
		Rows:      values.Get("rows"),
		OrderBy:   values.Get("orderBy"),
		Direction: values.Get("direction"),
		ID:        values.Get("school_id"),
		Name:      values.Get("name"),
		Slug:      values.Get("slug"),
		Enabled:   values.Get("enabled"),
	}
}

// parseFilter validates the raw query values and converts them into the
// domain filter. Validation failures are aggregated into FieldErrors.
func parseFilter(qp queryParams) (schoolbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter schoolbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("school_id", err)
		}
	}

	if qp.Name != "" {
		nme, err := name.Parse(qp.Name)
		switch err {
		case nil:
			filter.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if qp.Slug != "" {
		filter.Slug = &qp.Slug
	}

	if qp.Enabled != "" {
		enabled, err := strconv.ParseBool(qp.Enabled)
		switch err {
		case nil:
			filter.Enabled = &enabled
		default:
			fieldErrors.Add("enabled", err)
		}
	}

	if fieldErrors != nil {
		return schoolbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
