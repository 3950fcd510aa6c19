package gradedb

import (
	"bytes"
	"strings"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
)

func applyFilter(filter gradebus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.SchoolID != nil {
		data["school_id"] = *filter.SchoolID
		wc = append(wc, "school_id = :school_id")
	}

	if filter.ID != nil {
		data["grade_id"] = *filter.ID
		wc = append(wc, "grade_id = :grade_id")
	}

	if filter.StudentID != nil {
		data["student_id"] = *filter.StudentID
		wc = append(wc, "student_id = :student_id")
	}

	if filter.Subject != nil {
		data["subject"] = *filter.Subject
		wc = append(wc, "subject = :subject")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
