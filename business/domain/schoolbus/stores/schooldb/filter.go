package schooldb

import (
	"bytes"
	"strings"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
)

func applyFilter(filter schoolbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["school_id"] = *filter.ID
		wc = append(wc, "school_id = :school_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "name LIKE :name")
	}

	if filter.Slug != nil {
		data["slug"] = *filter.Slug
		wc = append(wc, "slug = :slug")
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
