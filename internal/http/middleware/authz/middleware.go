package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/taskbot/internal/core/model"
	httpCtx "github.com/bornholm/taskbot/internal/http/context"
	"github.com/pkg/errors"
)

type AssertFunc func(ctx context.Context, caller *model.Caller) (bool, error)

func IsAuthenticated(ctx context.Context, caller *model.Caller) (bool, error) {
	return caller != nil, nil
}

func Has(role model.RoleRef) AssertFunc {
	return func(ctx context.Context, caller *model.Caller) (bool, error) {
		return caller.HasRole(role), nil
	}
}

// HasAny allows callers holding at least one of the given roles. Role names
// are compared exactly, case-sensitive.
func HasAny(roles ...model.RoleRef) AssertFunc {
	return func(ctx context.Context, caller *model.Caller) (bool, error) {
		for _, role := range roles {
			if caller.HasRole(role) {
				return true, nil
			}
		}

		return false, nil
	}
}

func OneOf(funcs ...AssertFunc) AssertFunc {
	return func(ctx context.Context, caller *model.Caller) (bool, error) {
		for _, fn := range funcs {
			allowed, err := fn(ctx, caller)
			if err != nil {
				return false, errors.WithStack(err)
			}

			if allowed {
				return true, nil
			}
		}

		return false, nil
	}
}

func Assert(ctx context.Context, caller *model.Caller, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, caller)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func Middleware(forbidden http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			caller := httpCtx.Caller(ctx)

			allowed, err := Assert(ctx, caller, funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert caller authorizations", slog.Any("error", errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				if forbidden != nil {
					forbidden.ServeHTTP(w, r)
					return
				}

				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			h.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
