package setup

import (
	"context"

	"github.com/bornholm/taskbot/internal/config"
	"github.com/bornholm/taskbot/internal/http"
	"github.com/bornholm/taskbot/internal/http/handler/api"
	"github.com/bornholm/taskbot/internal/http/handler/metrics"
	"github.com/bornholm/taskbot/internal/http/handler/status"
	"github.com/bornholm/taskbot/internal/http/middleware/identity"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	taskManager, err := GetTaskManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task manager from config")
	}

	apiHandler := api.NewHandler(taskManager,
		RoleRefs(conf.Bot.AdminRoles),
		RoleRefs(conf.Bot.PrivilegedRoles),
	)

	identityMiddleware := identity.Middleware()

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/", status.NewHandler(conf.Bot.StatusMessage)),
		http.WithMount("/api/v1/", identityMiddleware(apiHandler)),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	return http.NewServer(options...), nil
}
