// Package auditapp maintains the web based api for audit trail access.
package auditapp

import (
	"context"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
)

// app manages the set of app layer api functions for the audit domain.
type app struct {
	auditBus *auditbus.Core
}

// newApp constructs an audit app API for use.
func newApp(auditBus *auditbus.Core) *app {
	return &app{
		auditBus: auditBus,
	}
}

// query returns the school's audit trail with paging.
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

	orderBy := order.Parse(orderByFields, qp.OrderBy, qp.Direction, auditbus.DefaultOrderBy)

	ents, err := a.auditBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.auditBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppEntries(ents), total, pg)
}
