package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const paramRole = "role"

func assignCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     paramRole,
			Usage:    "Role to assign to the task",
			Required: true,
		},
	)

	return &cli.Command{
		Name:      "assign-task",
		Usage:     "Assign a role to a task",
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

			task, err := taskbotClient.AssignTask(ctx, taskID, cCtx.String(paramRole))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("Task '%s' assigned to role '%s'\n", task.Name, task.AssignedRole)

			return nil
		},
	}
}
