package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func updateCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:    paramDescription,
			Aliases: []string{"d"},
			Usage:   "New description of the task",
		},
		&cli.StringFlag{
			Name:  paramDueDate,
			Usage: "New due date of the task (YYYY-MM-DD)",
		},
	)

	return &cli.Command{
		Name:      "update-task",
		Usage:     "Update the description and/or due date of a task",
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

			var description, dueDate *string

			if cCtx.IsSet(paramDescription) {
				value := cCtx.String(paramDescription)
				description = &value
			}

			if cCtx.IsSet(paramDueDate) {
				value := cCtx.String(paramDueDate)
				dueDate = &value
			}

			task, err := taskbotClient.UpdateTask(ctx, taskID, description, dueDate)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("Task '%s' updated\n", task.Name)

			return nil
		},
	}
}
