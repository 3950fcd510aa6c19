package docapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
)

var orderByFields = map[string]string{
	"document_id":    docbus.OrderByID,
	"name":           docbus.OrderByName,
	"price":          docbus.OrderByPrice,
	"effective_from": docbus.OrderByEffectiveFrom,
	"created_date":   docbus.OrderByCreatedAt,
}
