package auditapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
)

var orderByFields = map[string]string{
	"action":       auditbus.OrderByAction,
	"entity":       auditbus.OrderByEntity,
	"created_date": auditbus.OrderByCreatedAt,
}
