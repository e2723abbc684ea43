package setup

import (
	"context"

	"github.com/bornholm/taskbot/internal/config"
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/service"
	"github.com/pkg/errors"
)

var GetTaskManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TaskManager, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task store from config")
	}

	roles, err := getRoleDirectoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create role directory from config")
	}

	taskManager := service.NewTaskManager(store, roles,
		service.WithTaskManagerPrivilegedRoles(RoleRefs(conf.Bot.PrivilegedRoles)...),
	)

	return taskManager, nil
})

// RoleRefs converts configured role names to role references.
func RoleRefs(roles []string) []model.RoleRef {
	refs := make([]model.RoleRef, 0, len(roles))
	for _, role := range roles {
		refs = append(refs, model.RoleRef(role))
	}

	return refs
}
