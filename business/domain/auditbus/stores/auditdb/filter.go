package auditdb

import (
	"bytes"
	"strings"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
)

func applyFilter(filter auditbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.SchoolID != nil {
		data["school_id"] = *filter.SchoolID
		wc = append(wc, "school_id = :school_id")
	}

	if filter.ActorID != nil {
		data["actor_id"] = *filter.ActorID
		wc = append(wc, "actor_id = :actor_id")
	}

	if filter.Action != nil {
		data["action"] = filter.Action.String()
		wc = append(wc, "action = :action")
	}

	if filter.Entity != nil {
		data["entity"] = *filter.Entity
		wc = append(wc, "entity = :entity")
	}

	if filter.EntityID != nil {
		data["entity_id"] = *filter.EntityID
		wc = append(wc, "entity_id = :entity_id")
	}

	if filter.StartCreatedAt != nil {
		data["start_created_at"] = filter.StartCreatedAt.UTC()
		wc = append(wc, "created_at >= :start_created_at")
	}

	if filter.EndCreatedAt != nil {
		data["end_created_at"] = filter.EndCreatedAt.UTC()
		wc = append(wc, "created_at <= :end_created_at")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
