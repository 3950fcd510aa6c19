package gradedb

import (
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/google/uuid"
)

type gradeDB struct {
	ID         uuid.UUID `db:"grade_id"`
	SchoolID   uuid.UUID `db:"school_id"`
	StudentID  uuid.UUID `db:"student_id"`
	Subject    string    `db:"subject"`
	Assessment string    `db:"assessment"`
	Score      float64   `db:"score"`
	MaxScore   float64   `db:"max_score"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func toDBGrade(grd gradebus.Grade) gradeDB {
	return gradeDB{
		ID:         grd.ID,
		SchoolID:   grd.SchoolID,
		StudentID:  grd.StudentID,
		Subject:    grd.Subject,
		Assessment: grd.Assessment,
		Score:      grd.Score,
		MaxScore:   grd.MaxScore,
		CreatedAt:  grd.CreatedAt.UTC(),
		UpdatedAt:  grd.UpdatedAt.UTC(),
	}
}

func toBusGrade(dbGrd gradeDB) gradebus.Grade {
	return gradebus.Grade{
		ID:         dbGrd.ID,
		SchoolID:   dbGrd.SchoolID,
		StudentID:  dbGrd.StudentID,
		Subject:    dbGrd.Subject,
		Assessment: dbGrd.Assessment,
		Score:      dbGrd.Score,
		MaxScore:   dbGrd.MaxScore,
		CreatedAt:  dbGrd.CreatedAt.In(time.Local),
		UpdatedAt:  dbGrd.UpdatedAt.In(time.Local),
	}
}

func toBusGrades(dbGrds []gradeDB) []gradebus.Grade {
	grds := make([]gradebus.Grade, len(dbGrds))
	for i, dbGrd := range dbGrds {
		grds[i] = toBusGrade(dbGrd)
	}

	return grds
}
