package common

import (
	"net/url"

	"github.com/bornholm/taskbot/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer     = "server"
	paramMember     = "member"
	paramMemberName = "member-name"
	paramRoles      = "roles"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:8080",
		EnvVars: []string{"TASKBOT_CLI_SERVER"},
		Usage:   "Taskbot server base url",
	})
	flagMember = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramMember,
		Aliases: []string{"m"},
		EnvVars: []string{"TASKBOT_CLI_MEMBER"},
		Usage:   "Member identifier to act as",
	})
	flagMemberName = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramMemberName,
		EnvVars: []string{"TASKBOT_CLI_MEMBER_NAME"},
		Usage:   "Display name of the member",
	})
	flagRoles = altsrc.NewStringSliceFlag(&cli.StringSliceFlag{
		Name:    paramRoles,
		Aliases: []string{"r"},
		Value:   cli.NewStringSlice(),
		EnvVars: []string{"TASKBOT_CLI_ROLES"},
		Usage:   "Roles held by the member",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagMember,
		flagMemberName,
		flagRoles,
	}, flags...)
}

// WithConfigFileSource loads flag defaults from the YAML file given with the
// global config flag, before command line values are applied.
func WithConfigFileSource(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
}

func GetTaskbotClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if member := ctx.String(paramMember); member != "" {
		funcs = append(funcs, client.WithIdentity(member, ctx.String(paramMemberName), ctx.StringSlice(paramRoles)...))
	}

	return client.New(funcs...), nil
}
