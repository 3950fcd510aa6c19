package docapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/resource"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	DocBus    *docbus.Core
	AccessBus *accessbus.Core
	AuditBus  *auditbus.Core
	PermBus   *permbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	staff := mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin, schoolrole.Teacher)
	anyMember := mid.AuthorizeSchool(cfg.AccessBus)
	docGrant := mid.AuthorizeDocAction(cfg.PermBus, resource.Document, "document_id")

	api := newApp(cfg.DocBus, cfg.AuditBus)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/documents", api.query, authen, anyMember)
	app.HandlerFunc(http.MethodPost, version, "/schools/{school_id}/documents", api.create, authen, staff)

	// Instance routes additionally honor per-document grants.
	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/documents/{document_id}", api.queryByID, authen, anyMember, docGrant)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}/documents/{document_id}", api.update, authen, staff, docGrant)
	app.HandlerFunc(http.MethodDelete, version, "/schools/{school_id}/documents/{document_id}", api.delete, authen, mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin), docGrant)
}
