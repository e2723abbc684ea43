package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/taskbot/internal/core/model"
	httpCtx "github.com/bornholm/taskbot/internal/http/context"
)

func TestMiddleware(t *testing.T) {
	var caller *model.Caller

	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller = httpCtx.Caller(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderMember, "member-1")
	req.Header.Set(HeaderMemberName, "Alice")
	req.Header.Set(HeaderRoles, "admin, role-design,")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if caller == nil {
		t.Fatalf("caller: expected caller in context")
	}

	if e, g := model.MemberID("member-1"), caller.Member; e != g {
		t.Errorf("caller.Member: expected %q, got %q", e, g)
	}

	if e, g := "Alice", caller.DisplayName; e != g {
		t.Errorf("caller.DisplayName: expected %q, got %q", e, g)
	}

	if e, g := 2, len(caller.Roles); e != g {
		t.Fatalf("len(caller.Roles): expected %d, got %d", e, g)
	}

	if !caller.HasRole("role-design") {
		t.Errorf("caller.HasRole(\"role-design\"): expected true")
	}
}

func TestMiddlewareWithoutIdentity(t *testing.T) {
	var caller *model.Caller
	called := false

	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		caller = httpCtx.Caller(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if !called {
		t.Fatalf("called: expected handler to run")
	}

	if caller != nil {
		t.Errorf("caller: expected no caller in context, got %+v", caller)
	}
}
