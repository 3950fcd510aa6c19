package gradeapp

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
)

var orderByFields = map[string]string{
	"grade_id":     gradebus.OrderByID,
	"subject":      gradebus.OrderBySubject,
	"score":        gradebus.OrderByScore,
	"created_date": gradebus.OrderByCreatedAt,
}
