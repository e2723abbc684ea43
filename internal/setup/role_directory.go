package setup

import (
	"context"

	"github.com/bornholm/taskbot/internal/adapter/memory"
	"github.com/bornholm/taskbot/internal/config"
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
)

var getRoleDirectoryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.RoleDirectory, error) {
	names := make(map[model.RoleRef]string, len(conf.Bot.RoleNames))
	for ref, name := range conf.Bot.RoleNames {
		names[model.RoleRef(ref)] = name
	}

	return memory.NewRoleDirectory(names), nil
})
