// Package studentbus provides business access to student records. Students
// are scoped to a school and optionally linked to a user account for
// self-service reads.
package studentbus

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
	ErrNotFound          = errors.New("student not found")
	ErrUniqueAdmissionNo = errors.New("admission number is not unique")
)

// Storer defines the behavior required by the studentbus to persist students.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, std Student) error
	Update(ctx context.Context, std Student) error
	Delete(ctx context.Context, std Student) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Student, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, studentID uuid.UUID) (Student, error)
}

// Core manages the set of APIs for student access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for student api access.
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

// Create enrolls a new student record into a school.
func (c *Core) Create(ctx context.Context, ns NewStudent) (Student, error) {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.create")
	defer span.End()

	now := time.Now()

	std := Student{
		ID:          uuid.New(),
		SchoolID:    ns.SchoolID,
		UserID:      ns.UserID,
		Name:        ns.Name,
		AdmissionNo: ns.AdmissionNo,
		YearLevel:   ns.YearLevel,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, std); err != nil {
		return Student{}, fmt.Errorf("create: %w", err)
	}

	return std, nil
}

// Update modifies data about a student.
func (c *Core) Update(ctx context.Context, std Student, us UpdateStudent) (Student, error) {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.update")
	defer span.End()

	if us.Name != nil {
		std.Name = *us.Name
	}

	if us.YearLevel != nil {
		std.YearLevel = *us.YearLevel
	}

	if us.Enabled != nil {
		std.Enabled = *us.Enabled
	}

	std.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, std); err != nil {
		return Student{}, fmt.Errorf("update: %w", err)
	}

	return std, nil
}

// Delete removes the specified student record.
func (c *Core) Delete(ctx context.Context, std Student) error {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, std); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing students.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Student, error) {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.query")
	defer span.End()

	stds, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return stds, nil
}

// Count returns the total number of students.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the student by the specified ID.
func (c *Core) QueryByID(ctx context.Context, studentID uuid.UUID) (Student, error) {
	ctx, span := otel.AddSpan(ctx, "business.studentbus.querybyid")
	defer span.End()

	std, err := c.storer.QueryByID(ctx, studentID)
	if err != nil {
		return Student{}, fmt.Errorf("query: studentID[%s]: %w", studentID, err)
	}

	return std, nil
}
