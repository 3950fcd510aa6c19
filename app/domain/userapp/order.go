package userapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
)

var orderByFields = map[string]string{
	"user_id":      userbus.OrderByID,
	"name":         userbus.OrderByName,
	"email":        userbus.OrderByEmail,
	"role":         userbus.OrderByRole,
	"enabled":      userbus.OrderByEnabled,
	"created_date": userbus.OrderByCreatedAt,
}
