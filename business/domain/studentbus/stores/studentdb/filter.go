package studentdb

import (
	"bytes"
	"strings"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
)

func applyFilter(filter studentbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.SchoolID != nil {
		data["school_id"] = *filter.SchoolID
		wc = append(wc, "school_id = :school_id")
	}

	if filter.ID != nil {
		data["student_id"] = *filter.ID
		wc = append(wc, "student_id = :student_id")
	}

	if filter.UserID != nil {
		data["user_id"] = *filter.UserID
		wc = append(wc, "user_id = :user_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "name LIKE :name")
	}

	if filter.AdmissionNo != nil {
		data["admission_no"] = *filter.AdmissionNo
		wc = append(wc, "admission_no = :admission_no")
	}

	if filter.YearLevel != nil {
		data["year_level"] = *filter.YearLevel
		wc = append(wc, "year_level = :year_level")
	}

	if filter.Enabled != nil {
		data["enabled"] = *filter.Enabled
		wc = append(wc, "enabled = :enabled")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
