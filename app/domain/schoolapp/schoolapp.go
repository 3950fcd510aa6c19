// Package schoolapp maintains the web based api for school access.
package schoolapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/google/uuid"
)

// app manages the set of app layer api functions for the school domain.
type app struct {
	schoolBus *schoolbus.Core
	userBus   *userbus.Core
}

// newApp constructs a school app API for use.
func newApp(schoolBus *schoolbus.Core, userBus *userbus.Core) *app {
	return &app{
		schoolBus: schoolBus,
		userBus:   userBus,
	}
}

// create adds a new school to the system.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewSchool
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ns, err := toBusNewSchool(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	sch, err := a.schoolBus.Create(ctx, ns)
	if err != nil {
		if errors.Is(err, schoolbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, schoolbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: sch[%+v]: %s", sch, err)
	}

	return toAppSchool(sch)
}

// update updates an existing school.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateSchool
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	sch, err := a.schoolBus.QueryByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, schoolbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query school: %s", err)
	}

	us, err := toBusUpdateSchool(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updSch, err := a.schoolBus.Update(ctx, sch, us)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: schoolID[%s] us[%+v]: %s", sch.ID, us, err)
	}

	return toAppSchool(updSch)
}

// query returns a list of schools with paging.
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

	orderBy := order.Parse(orderByFields, qp.OrderBy, qp.Direction, schoolbus.DefaultOrderBy)

	schs, err := a.schoolBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.schoolBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppSchools(schs), total, pg)
}

// queryByID returns a school by its ID.
func (a *app) queryByID(ctx context.Context, _ *http.Request) web.Encoder {
	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	sch, err := a.schoolBus.QueryByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, schoolbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyid: schoolID[%s]: %s", schoolID, err)
	}

	return toAppSchool(sch)
}

// addMember enrolls a user into the school.
func (a *app) addMember(ctx context.Context, r *http.Request) web.Encoder {
	var app NewMembership
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	nm, err := toBusNewMembership(app, schoolID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if _, err := a.userBus.QueryByID(ctx, nm.UserID); err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query user: %s", err)
	}

	mem, err := a.schoolBus.AddMember(ctx, nm)
	if err != nil {
		if errors.Is(err, schoolbus.ErrUniqueMembership) {
			return errs.New(errs.Aborted, schoolbus.ErrUniqueMembership)
		}
		return errs.Errorf(errs.InternalOnlyLog, "addmember: nm[%+v]: %s", nm, err)
	}

	return toAppMembership(mem)
}

// updateMember changes the role or status of an existing membership.
func (a *app) updateMember(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateMembership
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	userID, err := uuid.Parse(web.Param(r, "user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	mem, err := a.schoolBus.QueryMembership(ctx, userID, schoolID)
	if err != nil {
		if errors.Is(err, schoolbus.ErrMembershipNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query membership: %s", err)
	}

	um, err := toBusUpdateMembership(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updMem, err := a.schoolBus.UpdateMember(ctx, mem, um)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "updatemember: userID[%s] schoolID[%s]: %s", userID, schoolID, err)
	}

	return toAppMembership(updMem)
}

// queryMembers returns the memberships of the school with paging.
func (a *app) queryMembers(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg := page.Parse(qp.Page, qp.Rows)

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	orderBy := order.Parse(memberOrderByFields, qp.OrderBy, qp.Direction, schoolbus.DefaultMemberOrderBy)

	mems, err := a.schoolBus.QueryMembers(ctx, schoolID, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "querymembers: %s", err)
	}

	total, err := a.schoolBus.CountMembers(ctx, schoolID)
	if err != nil {
		return errs.Errorf(errs.Internal, "countmembers: %s", err)
	}

	return query.NewResult(toAppMemberships(mems), total, pg)
}
