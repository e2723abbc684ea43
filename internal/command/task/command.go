package task

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Commands returns every task related subcommand.
func Commands() []*cli.Command {
	return []*cli.Command{
		createCommand(),
		assignCommand(),
		listCommand(),
		updateCommand(),
		completeCommand(),
		deleteCommand(),
		receiveCommand(),
		submitCommand(),
		submissionsCommand(),
		receiptsCommand(),
		announceCommand(),
	}
}

func requireTaskID(cCtx *cli.Context) (string, error) {
	taskID := cCtx.Args().Get(0)
	if taskID == "" {
		return "", errors.New("missing task id argument")
	}

	return taskID, nil
}
