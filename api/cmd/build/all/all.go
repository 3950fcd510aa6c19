// Package all binds all the routes into the specified app.
package all

import (
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/auditapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/authapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/checkapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/docapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/gradeapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/permapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/schoolapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/studentapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/domain/userapp"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mux"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {
	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	authapp.Routes(app, authapp.Config{
		Auth:      cfg.AuthConfig.Auth,
		ActiveKID: cfg.AuthConfig.ActiveKID,
	})

	userapp.Routes(app, userapp.Config{
		Auth:    cfg.AuthConfig.Auth,
		UserBus: cfg.BusConfig.UserBus,
	})

	schoolapp.Routes(app, schoolapp.Config{
		Auth:      cfg.AuthConfig.Auth,
		SchoolBus: cfg.BusConfig.SchoolBus,
		UserBus:   cfg.BusConfig.UserBus,
		AccessBus: cfg.BusConfig.AccessBus,
	})

	studentapp.Routes(app, studentapp.Config{
		Log:        cfg.Log,
		DB:         cfg.DB,
		Auth:       cfg.AuthConfig.Auth,
		StudentBus: cfg.BusConfig.StudentBus,
		AccessBus:  cfg.BusConfig.AccessBus,
		AuditBus:   cfg.BusConfig.AuditBus,
	})

	gradeapp.Routes(app, gradeapp.Config{
		Auth:       cfg.AuthConfig.Auth,
		GradeBus:   cfg.BusConfig.GradeBus,
		StudentBus: cfg.BusConfig.StudentBus,
		AccessBus:  cfg.BusConfig.AccessBus,
		AuditBus:   cfg.BusConfig.AuditBus,
	})

	docapp.Routes(app, docapp.Config{
		Auth:      cfg.AuthConfig.Auth,
		DocBus:    cfg.BusConfig.DocBus,
		AccessBus: cfg.BusConfig.AccessBus,
		AuditBus:  cfg.BusConfig.AuditBus,
		PermBus:   cfg.BusConfig.PermBus,
	})

	permapp.Routes(app, permapp.Config{
		Auth:      cfg.AuthConfig.Auth,
		PermBus:   cfg.BusConfig.PermBus,
		DocBus:    cfg.BusConfig.DocBus,
		AccessBus: cfg.BusConfig.AccessBus,
	})

	auditapp.Routes(app, auditapp.Config{
		Auth:      cfg.AuthConfig.Auth,
		AuditBus:  cfg.BusConfig.AuditBus,
		AccessBus: cfg.BusConfig.AccessBus,
	})
}
