package authapp

import (
	"net/http"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	ActiveKID string
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.Auth, cfg.ActiveKID)

	app.HandlerFunc(http.MethodPost, version, "/auth/login", api.login)
}
