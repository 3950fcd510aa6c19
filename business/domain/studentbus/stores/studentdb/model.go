package studentdb

import (
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/google/uuid"
)

type studentDB struct {
	ID          uuid.UUID `db:"student_id"`
	SchoolID    uuid.UUID `db:"school_id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	AdmissionNo string    `db:"admission_no"`
	YearLevel   int       `db:"year_level"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDBStudent(std studentbus.Student) studentDB {
	return studentDB{
		ID:          std.ID,
		SchoolID:    std.SchoolID,
		UserID:      std.UserID,
		Name:        std.Name.String(),
		AdmissionNo: std.AdmissionNo,
		YearLevel:   std.YearLevel,
		Enabled:     std.Enabled,
		CreatedAt:   std.CreatedAt.UTC(),
		UpdatedAt:   std.UpdatedAt.UTC(),
	}
}

func toBusStudent(dbStd studentDB) (studentbus.Student, error) {
	nme, err := name.Parse(dbStd.Name)
	if err != nil {
		return studentbus.Student{}, fmt.Errorf("parse name: %w", err)
	}

	std := studentbus.Student{
		ID:          dbStd.ID,
		SchoolID:    dbStd.SchoolID,
		UserID:      dbStd.UserID,
		Name:        nme,
		AdmissionNo: dbStd.AdmissionNo,
		YearLevel:   dbStd.YearLevel,
		Enabled:     dbStd.Enabled,
		CreatedAt:   dbStd.CreatedAt.In(time.Local),
		UpdatedAt:   dbStd.UpdatedAt.In(time.Local),
	}

	return std, nil
}

func toBusStudents(dbStds []studentDB) ([]studentbus.Student, error) {
	stds := make([]studentbus.Student, len(dbStds))

	for i, dbStd := range dbStds {
		std, err := toBusStudent(dbStd)
		if err != nil {
			return nil, err
		}
		stds[i] = std
	}

	return stds, nil
}
