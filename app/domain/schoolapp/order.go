package schoolapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
)

var orderByFields = map[string]string{
	"school_id":    schoolbus.OrderByID,
	"name":         schoolbus.OrderByName,
	"slug":         schoolbus.OrderBySlug,
	"enabled":      schoolbus.OrderByEnabled,
	"created_date": schoolbus.OrderByCreatedAt,
}

var memberOrderByFields = map[string]string{
	"role":         schoolbus.OrderByMemberRole,
	"status":       schoolbus.OrderByMemberStatus,
	"created_date": schoolbus.OrderByMemberCreatedAt,
}
