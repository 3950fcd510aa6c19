package studentapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log        *logger.Logger
	DB         *sqlx.DB
	Auth       *auth.Auth
	StudentBus *studentbus.Core
	AccessBus  *accessbus.Core
	AuditBus   *auditbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	staff := mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin, schoolrole.Teacher)
	anyMember := mid.AuthorizeSchool(cfg.AccessBus)
	tran := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.StudentBus, cfg.AccessBus, cfg.AuditBus)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/students", api.query, authen, staff)

	// The student row and its audit entry commit together.
	app.HandlerFunc(http.MethodPost, version, "/schools/{school_id}/students", api.create, authen, staff, tran)

	// Any active member may hit the instance route. The handler rejects
	// reads of records other than the caller's own for non-staff.
	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/students/{student_id}", api.queryByID, authen, anyMember)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}/students/{student_id}", api.update, authen, staff)
	app.HandlerFunc(http.MethodDelete, version, "/schools/{school_id}/students/{student_id}", api.delete, authen, mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin))
}
