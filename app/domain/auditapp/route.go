package auditapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	AuditBus  *auditbus.Core
	AccessBus *accessbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	schoolAdmin := mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin)

	api := newApp(cfg.AuditBus)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/audits", api.query, authen, schoolAdmin)
}
