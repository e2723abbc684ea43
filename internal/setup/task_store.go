package setup

import (
	"context"

	gormAdapter "github.com/bornholm/taskbot/internal/adapter/gorm"
	"github.com/bornholm/taskbot/internal/config"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
)

var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create database from config")
	}

	return gormAdapter.NewStore(db), nil
})
