package memory

import (
	"context"
	"testing"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
)

func TestRoleDirectory(t *testing.T) {
	directory := NewRoleDirectory(map[model.RoleRef]string{
		"role-1": "Moderators",
	})

	ctx := context.Background()

	name, err := directory.ResolveRole(ctx, "role-1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Moderators", name; e != g {
		t.Errorf("name: expected %q, got %q", e, g)
	}

	if _, err := directory.ResolveRole(ctx, "deleted-role"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("ResolveRole(): expected port.ErrNotFound, got %v", err)
	}
}
