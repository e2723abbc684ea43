package identity

import (
	"net/http"
	"strings"

	"github.com/bornholm/taskbot/internal/core/model"
	httpCtx "github.com/bornholm/taskbot/internal/http/context"
)

const (
	HeaderMember     = "X-Taskbot-Member"
	HeaderMemberName = "X-Taskbot-Member-Name"
	HeaderRoles      = "X-Taskbot-Roles"
)

// Middleware resolves the caller identity forwarded by the chat gateway.
// The gateway authenticates members, this service only trusts its headers.
func Middleware() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			member := r.Header.Get(HeaderMember)
			if member == "" {
				h.ServeHTTP(w, r)
				return
			}

			caller := &model.Caller{
				Member:      model.MemberID(member),
				DisplayName: r.Header.Get(HeaderMemberName),
				Roles:       parseRoles(r.Header.Get(HeaderRoles)),
			}

			ctx := httpCtx.SetCaller(r.Context(), caller)

			h.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func parseRoles(raw string) []model.RoleRef {
	roles := make([]model.RoleRef, 0)
	for _, role := range strings.Split(raw, ",") {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}

		roles = append(roles, model.RoleRef(role))
	}

	return roles
}
