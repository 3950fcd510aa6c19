package gradeapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/google/uuid"
)

type queryParams struct {
	Page      string
	Rows      string
	OrderBy   string
	Direction string
	ID        string
	StudentID string
	Subject   string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:      values.Get("page"),
		Rows:      values.Get("rows"),
		OrderBy:   values.Get("orderBy"),
		Direction: values.Get("direction"),
		ID:        values.Get("grade_id"),
		StudentID: values.Get("student_id"),
		Subject:   values.Get("subject"),
	}
}

// parseFilter validates the raw query values and converts them into the
// domain filter. The school is bound by the handler, not by the caller.
func parseFilter(qp queryParams) (gradebus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter gradebus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("grade_id", err)
		}
	}

	if qp.StudentID != "" {
		id, err := uuid.Parse(qp.StudentID)
		switch err {
		case nil:
			filter.StudentID = &id
		default:
			fieldErrors.Add("student_id", err)
		}
	}

	if qp.Subject != "" {
		filter.Subject = &qp.Subject
	}

	if fieldErrors != nil {
		return gradebus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
