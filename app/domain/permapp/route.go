package permapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	PermBus   *permbus.Core
	DocBus    *docbus.Core
	AccessBus *accessbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	schoolAdmin := mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin)

	api := newApp(cfg.PermBus, cfg.DocBus)

	app.HandlerFunc(http.MethodPost, version, "/schools/{school_id}/documents/{document_id}/grants", api.create, authen, schoolAdmin)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}/documents/{document_id}/grants/{user_id}", api.update, authen, schoolAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/schools/{school_id}/documents/{document_id}/grants/{user_id}", api.delete, authen, schoolAdmin)
}
