// Package authapp maintains the web based api for auth access.
package authapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
)

type app struct {
	auth *auth.Auth
	kid  string
}

func newApp(auth *auth.Auth, kid string) *app {
	return &app{
		auth: auth,
		kid:  kid,
	}
}

func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var req Login
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("parsing email: %w", err))
	}

	usr, err := a.auth.Login(ctx, *addr, req.Password)
	if err != nil {
		if errors.Is(err, userbus.ErrUserDisabled) {
			return errs.New(errs.PermissionDenied, userbus.ErrUserDisabled)
		}
		return errs.New(errs.Unauthenticated, err)
	}

	tokenStr, err := a.auth.GenerateToken(a.kid, usr.ID, usr.Role)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	return toAppToken(tokenStr)
}
