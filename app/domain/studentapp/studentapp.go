// Package studentapp maintains the web based api for student access.
package studentapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

// app manages the set of app layer api functions for the student domain.
type app struct {
	studentBus *studentbus.Core
	accessBus  *accessbus.Core
	auditBus   *auditbus.Core
}

// newApp constructs a student app API for use.
func newApp(studentBus *studentbus.Core, accessBus *accessbus.Core, auditBus *auditbus.Core) *app {
	return &app{
		studentBus: studentBus,
		accessBus:  accessBus,
		auditBus:   auditBus,
	}
}

// executeUnderTransaction binds the cores to the transaction started by the
// middleware chain when one is present.
func (a *app) executeUnderTransaction(ctx context.Context) (*app, error) {
	if tx, err := mid.GetTran(ctx); err == nil {
		studentBus, err := a.studentBus.NewWithTx(tx)
		if err != nil {
			return nil, err
		}

		auditBus, err := a.auditBus.NewWithTx(tx)
		if err != nil {
			return nil, err
		}

		a = &app{
			studentBus: studentBus,
			accessBus:  a.accessBus,
			auditBus:   auditBus,
		}

		return a, nil
	}

	return a, nil
}

func (a *app) audit(ctx context.Context, act actions.Action, std studentbus.Student) {
	actorID, err := mid.GetUserID(ctx)
	if err != nil {
		return
	}

	ne := auditbus.NewEntry{
		SchoolID: std.SchoolID,
		ActorID:  actorID,
		Action:   act,
		Entity:   "student",
		EntityID: std.ID,
		Data:     toAppStudent(std),
	}

	// Audit failures must not fail the request.
	_, _ = a.auditBus.Create(ctx, ne)
}

// create adds a new student to the school.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewStudent
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	a, err := a.executeUnderTransaction(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	ns, err := toBusNewStudent(app, schoolID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	std, err := a.studentBus.Create(ctx, ns)
	if err != nil {
		if errors.Is(err, studentbus.ErrUniqueAdmissionNo) {
			return errs.New(errs.Aborted, studentbus.ErrUniqueAdmissionNo)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: std[%+v]: %s", std, err)
	}

	a.audit(ctx, actions.Create, std)

	return toAppStudent(std)
}

// update updates an existing student.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateStudent
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	std, errResp := a.queryTenantStudent(ctx, r)
	if errResp != nil {
		return errResp
	}

	us, err := toBusUpdateStudent(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updStd, err := a.studentBus.Update(ctx, std, us)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: studentID[%s] us[%+v]: %s", std.ID, us, err)
	}

	a.audit(ctx, actions.Update, updStd)

	return toAppStudent(updStd)
}

// delete removes a student from the school.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	std, errResp := a.queryTenantStudent(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.studentBus.Delete(ctx, std); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: studentID[%s]: %s", std.ID, err)
	}

	a.audit(ctx, actions.Delete, std)

	return nil
}

// query returns a list of students in the school with paging.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg := page.Parse(qp.Page, qp.Rows)

	filter, err := parseFilter(qp)
	if err != nil {
		if fe := errs.GetFieldErrors(err); fe != nil {
			return fe
		}
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}
	filter.SchoolID = &schoolID

	orderBy := order.Parse(orderByFields, qp.OrderBy, qp.Direction, studentbus.DefaultOrderBy)

	stds, err := a.studentBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.studentBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppStudents(stds), total, pg)
}

// queryByID returns a student by its ID. Non-staff callers may only read
// their own record.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	std, errResp := a.queryTenantStudent(ctx, r)
	if errResp != nil {
		return errResp
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	if std.UserID != userID {
		if err := a.accessBus.Authorize(ctx, userID, std.SchoolID, schoolrole.Admin, schoolrole.Teacher); err != nil {
			return errs.New(errs.PermissionDenied, err)
		}
	}

	return toAppStudent(std)
}

// queryTenantStudent resolves the student_id route parameter inside the
// school bound to the request. Students from other schools look absent.
func (a *app) queryTenantStudent(ctx context.Context, r *http.Request) (studentbus.Student, web.Encoder) {
	studentID, err := uuid.Parse(web.Param(r, "student_id"))
	if err != nil {
		return studentbus.Student{}, errs.NewFieldErrors("student_id", err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return studentbus.Student{}, errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	std, err := a.studentBus.QueryByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, studentbus.ErrNotFound) {
			return studentbus.Student{}, errs.New(errs.NotFound, err)
		}
		return studentbus.Student{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: studentID[%s]: %s", studentID, err)
	}

	if std.SchoolID != schoolID {
		return studentbus.Student{}, errs.New(errs.NotFound, studentbus.ErrNotFound)
	}

	return std, nil
}
