// Package docapp maintains the web based api for document access.
package docapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/google/uuid"
)

// app manages the set of app layer api functions for the document domain.
type app struct {
	docBus   *docbus.Core
	auditBus *auditbus.Core
}

// newApp constructs a document app API for use.
func newApp(docBus *docbus.Core, auditBus *auditbus.Core) *app {
	return &app{
		docBus:   docBus,
		auditBus: auditBus,
	}
}

func (a *app) audit(ctx context.Context, act actions.Action, doc docbus.Document) {
	actorID, err := mid.GetUserID(ctx)
	if err != nil {
		return
	}

	ne := auditbus.NewEntry{
		SchoolID: doc.SchoolID,
		ActorID:  actorID,
		Action:   act,
		Entity:   "document",
		EntityID: doc.ID,
		Data:     toAppDocument(doc),
	}

	// Audit failures must not fail the request.
	_, _ = a.auditBus.Create(ctx, ne)
}

// create adds a new priced document to the school.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewDocument
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	nd, err := toBusNewDocument(app, schoolID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	doc, err := a.docBus.Create(ctx, nd)
	if err != nil {
		switch {
		case errors.Is(err, docbus.ErrInvalidWindow):
			return errs.New(errs.InvalidArgument, docbus.ErrInvalidWindow)
		case errors.Is(err, docbus.ErrConflict):
			return errs.New(errs.Aborted, docbus.ErrConflict)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: doc[%+v]: %s", doc, err)
	}

	a.audit(ctx, actions.Create, doc)

	return toAppDocument(doc)
}

// update updates an existing document.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateDocument
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	doc, errResp := a.queryTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	ud, err := toBusUpdateDocument(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updDoc, err := a.docBus.Update(ctx, doc, ud)
	if err != nil {
		switch {
		case errors.Is(err, docbus.ErrInvalidWindow):
			return errs.New(errs.InvalidArgument, docbus.ErrInvalidWindow)
		case errors.Is(err, docbus.ErrConflict):
			return errs.New(errs.Aborted, docbus.ErrConflict)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: documentID[%s] ud[%+v]: %s", doc.ID, ud, err)
	}

	a.audit(ctx, actions.Update, updDoc)

	return toAppDocument(updDoc)
}

// delete removes a document from the school.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	doc, errResp := a.queryTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.docBus.Delete(ctx, doc); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: documentID[%s]: %s", doc.ID, err)
	}

	a.audit(ctx, actions.Delete, doc)

	return nil
}

// query returns a list of documents in the school with paging.
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

	orderBy := order.Parse(orderByFields, qp.OrderBy, qp.Direction, docbus.DefaultOrderBy)

	docs, err := a.docBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.docBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppDocuments(docs), total, pg)
}

// queryByID returns a document by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	doc, errResp := a.queryTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppDocument(doc)
}

// queryTenantDocument resolves the document_id route parameter inside the
// school bound to the request. Documents from other schools look absent.
func (a *app) queryTenantDocument(ctx context.Context, r *http.Request) (docbus.Document, web.Encoder) {
	documentID, err := uuid.Parse(web.Param(r, "document_id"))
	if err != nil {
		return docbus.Document{}, errs.NewFieldErrors("document_id", err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return docbus.Document{}, errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	doc, err := a.docBus.QueryByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, docbus.ErrNotFound) {
			return docbus.Document{}, errs.New(errs.NotFound, err)
		}
		return docbus.Document{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: documentID[%s]: %s", documentID, err)
	}

	if doc.SchoolID != schoolID {
		return docbus.Document{}, errs.New(errs.NotFound, docbus.ErrNotFound)
	}

	return doc, nil
}
