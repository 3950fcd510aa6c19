// Package gradebus provides business access to assessment grades recorded
// for students inside a school.
package gradebus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("grade not found")
	ErrInvalidScore = errors.New("score out of range")
)

// Storer defines the behavior required by the gradebus to persist grades.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, grd Grade) error
	Update(ctx context.Context, grd Grade) error
	Delete(ctx context.Context, grd Grade) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Grade, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, gradeID uuid.UUID) (Grade, error)
	QueryByStudent(ctx context.Context, studentID uuid.UUID) ([]Grade, error)
}

// Core manages the set of APIs for grade access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for grade api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		storer: storer,
		log:    log,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newwithtx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Create records a new grade for a student.
func (c *Core) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.create")
	defer span.End()

	if ng.Score < 0 || ng.MaxScore <= 0 || ng.Score > ng.MaxScore {
		return Grade{}, fmt.Errorf("score[%g] max[%g]: %w", ng.Score, ng.MaxScore, ErrInvalidScore)
	}

	now := time.Now()

	grd := Grade{
		ID:         uuid.New(),
		SchoolID:   ng.SchoolID,
		StudentID:  ng.StudentID,
		Subject:    ng.Subject,
		Assessment: ng.Assessment,
		Score:      ng.Score,
		MaxScore:   ng.MaxScore,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storer.Create(ctx, grd); err != nil {
		return Grade{}, fmt.Errorf("create: %w", err)
	}

	return grd, nil
}

// Update modifies a recorded grade.
func (c *Core) Update(ctx context.Context, grd Grade, ug UpdateGrade) (Grade, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.update")
	defer span.End()

	if ug.Score != nil {
		grd.Score = *ug.Score
	}

	if ug.MaxScore != nil {
		grd.MaxScore = *ug.MaxScore
	}

	if grd.Score < 0 || grd.MaxScore <= 0 || grd.Score > grd.MaxScore {
		return Grade{}, fmt.Errorf("score[%g] max[%g]: %w", grd.Score, grd.MaxScore, ErrInvalidScore)
	}

	grd.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, grd); err != nil {
		return Grade{}, fmt.Errorf("update: %w", err)
	}

	return grd, nil
}

// Delete removes the specified grade.
func (c *Core) Delete(ctx context.Context, grd Grade) error {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, grd); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing grades.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Grade, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.query")
	defer span.End()

	grds, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return grds, nil
}

// Count returns the total number of grades.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the grade by the specified ID.
func (c *Core) QueryByID(ctx context.Context, gradeID uuid.UUID) (Grade, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.querybyid")
	defer span.End()

	grd, err := c.storer.QueryByID(ctx, gradeID)
	if err != nil {
		return Grade{}, fmt.Errorf("query: gradeID[%s]: %w", gradeID, err)
	}

	return grd, nil
}

// Summarize computes the summary for all grades of the specified student.
func (c *Core) Summarize(ctx context.Context, studentID uuid.UUID) (Summary, error) {
	ctx, span := otel.AddSpan(ctx, "business.gradebus.summarize")
	defer span.End()

	grds, err := c.storer.QueryByStudent(ctx, studentID)
	if err != nil {
		return Summary{}, fmt.Errorf("querybystudent: %w", err)
	}

	return Summarize(grds), nil
}
