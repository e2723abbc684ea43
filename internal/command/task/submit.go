package task

import (
	"fmt"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func submitCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     paramLink,
			Aliases:  []string{"l"},
			Usage:    "Link to the submitted work",
			Required: true,
		},
	)

	return &cli.Command{
		Name:      "submit-task",
		Usage:     "Submit work for a received task",
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

			if err := taskbotClient.SubmitTask(ctx, taskID, cCtx.String(paramLink)); err != nil {
				return errors.WithStack(err)
			}

			fmt.Println("Submission recorded")

			return nil
		},
	}
}
