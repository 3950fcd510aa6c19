package docdb

import (
	"bytes"
	"strings"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
)

func applyFilter(filter docbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.SchoolID != nil {
		data["school_id"] = *filter.SchoolID
		wc = append(wc, "school_id = :school_id")
	}

	if filter.ID != nil {
		data["document_id"] = *filter.ID
		wc = append(wc, "document_id = :document_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + *filter.Name + "%"
		wc = append(wc, "name LIKE :name")
	}

	if filter.EffectiveOn != nil {
		data["effective_on"] = *filter.EffectiveOn
		wc = append(wc, "effective_from <= :effective_on AND (effective_to IS NULL OR effective_to >= :effective_on)")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
