package studentapp

import (
	"net/http"
	"strconv"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

type queryParams struct {
	Page        string
	Rows        string
	OrderBy     string
	Direction   string
	ID          string
	Name        string
	AdmissionNo string
	YearLevel   string
	Enabled     string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:        values.Get("page"),
		Rows:        values.Get("rows"),
		OrderBy:     values.Get("orderBy"),
		Direction:   values.Get("direction"),
		ID:          values.Get("student_id"),
		Name:        values.Get("name"),
		AdmissionNo: values.Get("admission_no"),
		YearLevel:   values.Get("year_level"),
		Enabled:     values.Get("enabled"),
	}
}

// parseFilter validates the raw query values and converts them into the
// domain filter. The school is bound by the handler, not by the caller.
func parseFilter(qp queryParams) (studentbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter studentbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("student_id", err)
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

	if qp.AdmissionNo != "" {
		filter.AdmissionNo = &qp.AdmissionNo
	}

	if qp.YearLevel != "" {
		yl, err := strconv.Atoi(qp.YearLevel)
		switch err {
		case nil:
			filter.YearLevel = &yl
		default:
			fieldErrors.Add("year_level", err)
		}
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
		return studentbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
