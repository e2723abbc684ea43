package memory

import (
	"context"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
)

// RoleDirectory resolves role references from a static mapping, typically
// loaded from configuration.
type RoleDirectory struct {
	names map[model.RoleRef]string
}

func NewRoleDirectory(names map[model.RoleRef]string) *RoleDirectory {
	if names == nil {
		names = make(map[model.RoleRef]string)
	}

	return &RoleDirectory{names: names}
}

// ResolveRole implements port.RoleDirectory.
func (d *RoleDirectory) ResolveRole(ctx context.Context, role model.RoleRef) (string, error) {
	name, exists := d.names[role]
	if !exists {
		return "", errors.WithStack(port.ErrNotFound)
	}

	return name, nil
}

var _ port.RoleDirectory = &RoleDirectory{}
