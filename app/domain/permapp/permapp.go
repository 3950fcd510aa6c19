// Package permapp maintains the web based api for per-document grant access.
package permapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/google/uuid"
)

// app manages the set of app layer api functions for the grant domain.
type app struct {
	permBus *permbus.Core
	docBus  *docbus.Core
}

// newApp constructs a grant app API for use.
func newApp(permBus *permbus.Core, docBus *docbus.Core) *app {
	return &app{
		permBus: permBus,
		docBus:  docBus,
	}
}

// create adds a new grant on a document for a user.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewGrant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	documentID, errResp := a.resolveTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	ng, err := toBusNewGrant(app, documentID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	g, err := a.permBus.Create(ctx, ng)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: ng[%+v]: %s", ng, err)
	}

	return toAppGrant(g)
}

// update replaces the action set of an existing grant.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateGrant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	documentID, errResp := a.resolveTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	userID, err := uuid.Parse(web.Param(r, "user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	g, ug, err := toBusUpdateGrant(app, userID, documentID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updG, err := a.permBus.Update(ctx, g, ug)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: userID[%s] documentID[%s]: %s", userID, documentID, err)
	}

	return toAppGrant(updG)
}

// delete removes a grant from a document.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	documentID, errResp := a.resolveTenantDocument(ctx, r)
	if errResp != nil {
		return errResp
	}

	userID, err := uuid.Parse(web.Param(r, "user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	if err := a.permBus.Delete(ctx, userID, documentID); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: userID[%s] documentID[%s]: %s", userID, documentID, err)
	}

	return nil
}

// resolveTenantDocument confirms the document_id route parameter belongs to
// the school bound to the request.
func (a *app) resolveTenantDocument(ctx context.Context, r *http.Request) (uuid.UUID, web.Encoder) {
	documentID, err := uuid.Parse(web.Param(r, "document_id"))
	if err != nil {
		return uuid.Nil, errs.NewFieldErrors("document_id", err)
	}

	schoolID, err := mid.GetSchoolID(ctx)
	if err != nil {
		return uuid.Nil, errs.Errorf(errs.Internal, "school missing in context: %s", err)
	}

	doc, err := a.docBus.QueryByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, docbus.ErrNotFound) {
			return uuid.Nil, errs.New(errs.NotFound, err)
		}
		return uuid.Nil, errs.Errorf(errs.InternalOnlyLog, "query document: %s", err)
	}

	if doc.SchoolID != schoolID {
		return uuid.Nil, errs.New(errs.NotFound, docbus.ErrNotFound)
	}

	return documentID, nil
}
