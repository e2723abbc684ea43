package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/bornholm/taskbot/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func receiveCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "receive",
		Usage:     "Acknowledge reception of a task",
		ArgsUsage: "TASK_ID",
		Flags:     flags,
		Before:    common.WithConfigFileSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskID, err := requireTaskID(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			taskbotClient, err := common.GetTaskbotClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create taskbot client")
			}

			outcome, err := taskbotClient.ReceiveTask(ctx, taskID)
			if err != nil {
				return errors.WithStack(err)
			}

			if outcome == service.ReceiveOutcomeAlreadyReceived {
				fmt.Println("Task already received")
			} else {
				fmt.Println("Task received")
			}

			return nil
		},
	}
}
