// Package gradeapp maintains the web based api for grade access.
package gradeapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

// app manages the set of app layer api functions for the grade domain.
type app struct {
	gradeBus   *gradebus.Core
	studentBus *studentbus.Core
	accessBus  *accessbus.Core
	auditBus   *auditbus.Core
}

// newApp constructs a grade app API for use.
func newApp(gradeBus *gradebus.Core, studentBus *studentbus.Core, accessBus *accessbus.Core, auditBus *auditbus.Core) *app {
	return &app{
		gradeBus:   gradeBus,
		studentBus: studentBus,
		accessBus:  accessBus,
		auditBus:   auditBus,
	}
}

func (a *app) audit(ctx context.Context, act actions.Action, grd gradebus.Grade) {
	actorID, err := mid.GetUserID(ctx)
	if err != nil {
		return
	}

	ne := auditbus.NewEntry{
		SchoolID: grd.SchoolID,
		ActorID:  actorID,
		Action:   act,
		Entity:   "grade",
		EntityID: grd.ID,
		Data:     toAppGrade(grd),
	}

	// Audit failures must not fail the request.
	_, _ = a.auditBus.Create(ctx, ne)
}

// create records a new grade for a student in the school.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewGrade
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	ng, err := toBusNewGrade(app, schoolID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	std, err := a.studentBus.QueryByID(ctx, ng.StudentID)
	if err != nil {
		if errors.Is(err, studentbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query student: %s", err)
	}
	if std.SchoolID != schoolID {
		return errs.New(errs.NotFound, studentbus.ErrNotFound)
	}

	grd, err := a.gradeBus.Create(ctx, ng)
	if err != nil {
		if errors.Is(err, gradebus.ErrInvalidScore) {
			return errs.New(errs.InvalidArgument, gradebus.ErrInvalidScore)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: grd[%+v]: %s", grd, err)
	}

	a.audit(ctx, actions.Create, grd)

	return toAppGrade(grd)
}

// update updates an existing grade.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateGrade
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	grd, errResp := a.queryTenantGrade(ctx, r)
	if errResp != nil {
		return errResp
	}

	ug := toBusUpdateGrade(app)

	updGrd, err := a.gradeBus.Update(ctx, grd, ug)
	if err != nil {
		if errors.Is(err, gradebus.ErrInvalidScore) {
			return errs.New(errs.InvalidArgument, gradebus.ErrInvalidScore)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: gradeID[%s] ug[%+v]: %s", grd.ID, ug, err)
	}

	a.audit(ctx, actions.Update, updGrd)

	return toAppGrade(updGrd)
}

// delete removes a grade from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	grd, errResp := a.queryTenantGrade(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.gradeBus.Delete(ctx, grd); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: gradeID[%s]: %s", grd.ID, err)
	}

	a.audit(ctx, actions.Delete, grd)

	return nil
}

// query returns a list of grades in the school with paging.
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

	orderBy := order.Parse(orderByFields, qp.OrderBy, qp.Direction, gradebus.DefaultOrderBy)

	grds, err := a.gradeBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.gradeBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppGrades(grds), total, pg)
}

// queryByID returns a grade by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	grd, errResp := a.queryTenantGrade(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppGrade(grd)
}

// summarize returns the aggregate standing of a student. Non-staff callers
// may only read their own summary.
func (a *app) summarize(ctx context.Context, r *http.Request) web.Encoder {
	studentID, err := uuid.Parse(web.Param(r, "student_id"))
	if err != nil {
		return errs.NewFieldErrors("student_id", err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	std, err := a.studentBus.QueryByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, studentbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query student: %s", err)
	}
	if std.SchoolID != schoolID {
		return errs.New(errs.NotFound, studentbus.ErrNotFound)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	if std.UserID != userID {
		if err := a.accessBus.Authorize(ctx, userID, schoolID, schoolrole.Admin, schoolrole.Teacher); err != nil {
			return errs.New(errs.PermissionDenied, err)
		}
	}

	sum, err := a.gradeBus.Summarize(ctx, studentID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "summarize: studentID[%s]: %s", studentID, err)
	}

	return toAppSummary(studentID, sum)
}

// queryTenantGrade resolves the grade_id route parameter inside the school
// bound to the request. Grades from other schools look absent.
func (a *app) queryTenantGrade(ctx context.Context, r *http.Request) (gradebus.Grade, web.Encoder) {
	gradeID, err := uuid.Parse(web.Param(r, "grade_id"))
	if err != nil {
		return gradebus.Grade{}, errs.NewFieldErrors("grade_id", err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return gradebus.Grade{}, errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	grd, err := a.gradeBus.QueryByID(ctx, gradeID)
	if err != nil {
		if errors.Is(err, gradebus.ErrNotFound) {
			return gradebus.Grade{}, errs.New(errs.NotFound, err)
		}
		return gradebus.Grade{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: gradeID[%s]: %s", gradeID, err)
	}

	if grd.SchoolID != schoolID {
		return gradebus.Grade{}, errs.New(errs.NotFound, gradebus.ErrNotFound)
	}

	return grd, nil
}
