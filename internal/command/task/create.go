package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramName        = "name"
	paramDescription = "description"
	paramDueDate     = "due-date"
	paramLink        = "link"
)

func createCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     paramName,
			Aliases:  []string{"n"},
			Usage:    "Name of the task",
			Required: true,
		},
		&cli.StringFlag{
			Name:    paramDescription,
			Aliases: []string{"d"},
			Usage:   "Description of the task",
		},
		&cli.StringFlag{
			Name:     paramDueDate,
			Usage:    "Due date of the task (YYYY-MM-DD)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  paramLink,
			Usage: "Link to attach to the task",
		},
	)

	return &cli.Command{
		Name:   "create-task",
		Usage:  "Create a new task",
		Flags:  flags,
		Before: common.WithConfigFileSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskbotClient, err := common.GetTaskbotClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create taskbot client")
			}

			task, err := taskbotClient.CreateTask(ctx,
				cCtx.String(paramName),
				cCtx.String(paramDescription),
				cCtx.String(paramDueDate),
				cCtx.String(paramLink),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("Task '%s' created (id: %s)\n", task.Name, task.ID)

			return nil
		},
	}
}
