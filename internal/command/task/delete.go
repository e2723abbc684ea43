package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func deleteCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "delete-task",
		Usage:     "Delete a task and its receipts",
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

			if err := taskbotClient.DeleteTask(ctx, taskID); err != nil {
				return errors.WithStack(err)
			}

			fmt.Println("Task deleted")

			return nil
		},
	}
}
