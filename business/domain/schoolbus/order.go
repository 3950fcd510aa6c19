package schoolbus

import "github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID        = "school_id"
	OrderByName      = "name"
	OrderBySlug      = "slug"
	OrderByEnabled   = "enabled"
	OrderByCreatedAt = "created_at"
)

// DefaultMemberOrderBy represents the default way memberships are sorted.
var DefaultMemberOrderBy = order.NewBy(OrderByMemberCreatedAt, order.ASC)

// Set of fields that membership results can be ordered by.
const (
	OrderByMemberRole      = "role"
	OrderByMemberStatus    = "status"
	OrderByMemberCreatedAt = "created_at"
)
