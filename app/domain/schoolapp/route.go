package schoolapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	SchoolBus *schoolbus.Core
	UserBus   *userbus.Core
	AccessBus *accessbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.SuperAdmin, role.SystemAdmin)
	schoolAdmin := mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin)
	anyMember := mid.AuthorizeSchool(cfg.AccessBus)

	api := newApp(cfg.SchoolBus, cfg.UserBus)

	app.HandlerFunc(http.MethodGet, version, "/schools", api.query, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPost, version, "/schools", api.create, authen, ruleAdmin)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}", api.queryByID, authen, anyMember)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}", api.update, authen, schoolAdmin)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/members", api.queryMembers, authen, schoolAdmin)
	app.HandlerFunc(http.MethodPost, version, "/schools/{school_id}/members", api.addMember, authen, schoolAdmin)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}/members/{user_id}", api.updateMember, authen, schoolAdmin)
}
