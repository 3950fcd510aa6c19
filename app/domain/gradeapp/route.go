package gradeapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mid"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth       *auth.Auth
	GradeBus   *gradebus.Core
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

	api := newApp(cfg.GradeBus, cfg.StudentBus, cfg.AccessBus, cfg.AuditBus)

	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/grades", api.query, authen, staff)
	app.HandlerFunc(http.MethodPost, version, "/schools/{school_id}/grades", api.create, authen, staff)
	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/grades/{grade_id}", api.queryByID, authen, staff)
	app.HandlerFunc(http.MethodPut, version, "/schools/{school_id}/grades/{grade_id}", api.update, authen, staff)
	app.HandlerFunc(http.MethodDelete, version, "/schools/{school_id}/grades/{grade_id}", api.delete, authen, mid.AuthorizeSchool(cfg.AccessBus, schoolrole.Admin))

	// Any active member may request a summary. The handler rejects reads
	// of summaries other than the caller's own for non-staff.
	app.HandlerFunc(http.MethodGet, version, "/schools/{school_id}/students/{student_id}/summary", api.summarize, authen, anyMember)
}
