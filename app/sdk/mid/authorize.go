package mid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/errs"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/web"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/actions"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/resource"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("ID is not in its proper form")

// Authorize checks the caller's platform role against the allowed list.
func Authorize(a *auth.Auth, allowedRoles ...role.Role) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			if err := a.Authorize(ctx, GetClaims(ctx), allowedRoles...); err != nil {
				return errs.New(errs.PermissionDenied, err)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}

// AuthorizeUser loads the user referenced by the user_id route parameter and
// stores it in the context. When the parameter is absent the caller's own
// record is loaded.
func AuthorizeUser(userBus *userbus.Core) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			userID, err := GetUserID(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			if id := web.Param(r, "user_id"); id != "" {
				userID, err = uuid.Parse(id)
				if err != nil {
					return errs.New(errs.InvalidArgument, ErrInvalidID)
				}
			}

			usr, err := userBus.QueryByID(ctx, userID)
			if err != nil {
				switch {
				case errors.Is(err, userbus.ErrNotFound):
					return errs.New(errs.NotFound, err)
				default:
					return errs.Errorf(errs.Internal, "querybyid: userID[%s]: %s", userID, err)
				}
			}

			ctx = setUser(ctx, usr)

			return next(ctx, r)
		}

		return h
	}

	return m
}

// AuthorizeSchool resolves the school from the school_id route parameter and
// checks the caller may act inside it. The resolved school id is stored in
// the context for the handler.
func AuthorizeSchool(access *accessbus.Core, allowedRoles ...schoolrole.Role) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			userID, err := GetUserID(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			schoolID, err := uuid.Parse(web.Param(r, "school_id"))
			if err != nil {
				return errs.New(errs.InvalidArgument, ErrInvalidID)
			}

			if err := access.Authorize(ctx, userID, schoolID, allowedRoles...); err != nil {
				switch {
				case errors.Is(err, accessbus.ErrNotFound):
					return errs.New(errs.NotFound, err)
				default:
					return errs.New(errs.PermissionDenied, err)
				}
			}

			ctx = setSchoolID(ctx, schoolID)

			return next(ctx, r)
		}

		return h
	}

	return m
}

// AuthorizeDocAction checks the caller holds a grant for the action implied
// by the HTTP method on the document named in the route. idKey names the
// route parameter carrying the resource ID; empty means a collection action.
func AuthorizeDocAction(perm *permbus.Core, res resource.Resource, idKey string) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			userID, err := GetUserID(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			act, err := mapHTTPMethodToAction(r.Method)
			if err != nil {
				return errs.New(errs.FailedPrecondition, err)
			}

			resourceID := uuid.Nil
			if idKey != "" {
				resourceID, err = uuid.Parse(web.Param(r, idKey))
				if err != nil {
					return errs.New(errs.InvalidArgument, ErrInvalidID)
				}
			}

			check := permbus.AccessCheck{
				UserID:     userID,
				Resource:   res,
				ResourceID: resourceID,
				Action:     act,
			}

			if err := perm.ValidateAccess(ctx, check); err != nil {
				return errs.New(errs.PermissionDenied, err)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}

func mapHTTPMethodToAction(method string) (actions.Action, error) {
	switch method {
	case http.MethodGet:
		return actions.Get, nil
	case http.MethodPost:
		return actions.Create, nil
	case http.MethodPut, http.MethodPatch:
		return actions.Update, nil
	case http.MethodDelete:
		return actions.Delete, nil
	default:
		return actions.Action{}, fmt.Errorf("action: %s", method)
	}
}
