package gradeapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/google/uuid"
)

// =============================================================================
// Grade (Output)
// =============================================================================

// Grade represents a single assessment result.
type Grade struct {
	ID          string  `json:"id"`
	SchoolID    string  `json:"schoolId"`
	StudentID   string  `json:"studentId"`
	Subject     string  `json:"subject"`
	Assessment  string  `json:"assessment"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"maxScore"`
	Percent     float64 `json:"percent"`
	Letter      string  `json:"letter"`
	DateCreated string  `json:"dateCreated"`
	DateUpdated string  `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (g Grade) Encode() ([]byte, string, error) {
	data, err := json.Marshal(g)
	return data, "application/json", err
}

func toAppGrade(bus gradebus.Grade) Grade {
	pct := gradebus.Percentage(bus.Score, bus.MaxScore)

	return Grade{
		ID:          bus.ID.String(),
		SchoolID:    bus.SchoolID.String(),
		StudentID:   bus.StudentID.String(),
		Subject:     bus.Subject,
		Assessment:  bus.Assessment,
		Score:       bus.Score,
		MaxScore:    bus.MaxScore,
		Percent:     pct,
		Letter:      gradebus.Letter(pct),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppGrades(grds []gradebus.Grade) []Grade {
	app := make([]Grade, len(grds))
	for i, grd := range grds {
		app[i] = toAppGrade(grd)
	}
	return app
}

// =============================================================================
// Summary (Output)
// =============================================================================

// Summary represents a student's aggregate standing.
type Summary struct {
	StudentID      string  `json:"studentId"`
	Grades         int     `json:"grades"`
	AveragePercent float64 `json:"averagePercent"`
	Letter         string  `json:"letter"`
}

// Encode implements the web.Encoder interface.
func (s Summary) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSummary(studentID uuid.UUID, bus gradebus.Summary) Summary {
	return Summary{
		StudentID:      studentID.String(),
		Grades:         bus.Grades,
		AveragePercent: bus.AveragePercent,
		Letter:         bus.Letter,
	}
}

// =============================================================================
// NewGrade (Input)
// =============================================================================

// NewGrade defines the data needed to record a new grade.
type NewGrade struct {
	StudentID  string  `json:"studentId" validate:"required"`
	Subject    string  `json:"subject" validate:"required"`
	Assessment string  `json:"assessment" validate:"required"`
	Score      float64 `json:"score" validate:"min=0"`
	MaxScore   float64 `json:"maxScore" validate:"required,gt=0"`
}

// Decode implements the web.Decoder interface.
func (app *NewGrade) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewGrade) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewGrade(app NewGrade, schoolID uuid.UUID) (gradebus.NewGrade, error) {
	studentID, err := uuid.Parse(app.StudentID)
	if err != nil {
		return gradebus.NewGrade{}, fmt.Errorf("parse student id: %w", err)
	}

	bus := gradebus.NewGrade{
		SchoolID:   schoolID,
		StudentID:  studentID,
		Subject:    app.Subject,
		Assessment: app.Assessment,
		Score:      app.Score,
		MaxScore:   app.MaxScore,
	}

	return bus, nil
}

// =============================================================================
// UpdateGrade (Input)
// =============================================================================

// UpdateGrade defines the data needed to update a grade.
type UpdateGrade struct {
	Score    *float64 `json:"score" validate:"omitempty,min=0"`
	MaxScore *float64 `json:"maxScore" validate:"omitempty,gt=0"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateGrade) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateGrade) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateGrade(app UpdateGrade) gradebus.UpdateGrade {
	return gradebus.UpdateGrade{
		Score:    app.Score,
		MaxScore: app.MaxScore,
	}
}
