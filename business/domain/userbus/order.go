package userbus

import "github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByID        = "user_id"
	OrderByName      = "name"
	OrderByEmail     = "email"
	OrderByRole      = "role"
	OrderByEnabled   = "enabled"
	OrderByCreatedAt = "created_at"
)
