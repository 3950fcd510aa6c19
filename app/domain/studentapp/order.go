package studentapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
)

var orderByFields = map[string]string{
	"student_id":   studentbus.OrderByID,
	"name":         studentbus.OrderByName,
	"admission_no": studentbus.OrderByAdmissionNo,
	"year_level":   studentbus.OrderByYearLevel,
	"created_date": studentbus.OrderByCreatedAt,
}
