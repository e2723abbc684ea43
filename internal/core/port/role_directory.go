package port

import (
	"context"

	"github.com/bornholm/taskbot/internal/core/model"
)

// RoleDirectory resolves role references to human-readable names. It fails
// with ErrNotFound when a role cannot be resolved anymore, for example when
// it was deleted on the chat platform.
type RoleDirectory interface {
	ResolveRole(ctx context.Context, role model.RoleRef) (string, error)
}
