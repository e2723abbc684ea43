package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func announceCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "announce",
		Usage:     "Print a ready to post announcement message for a task",
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

			task, err := taskbotClient.GetTask(ctx, taskID)
			if err != nil {
				return errors.WithStack(err)
			}

			due := time.Unix(task.DueDate, 0).UTC()

			var sb strings.Builder

			fmt.Fprintf(&sb, "📋 New task: %s\n", task.Name)
			fmt.Fprintf(&sb, "Assigned to: %s\n", task.RoleName)
			fmt.Fprintf(&sb, "Due: %s (%s)\n", due.Format("2006-01-02"), humanize.Time(due))

			if task.Description != "" {
				fmt.Fprintf(&sb, "\n%s\n", task.Description)
			}

			if task.Link != "" {
				fmt.Fprintf(&sb, "\nMore details: %s\n", task.Link)
			}

			fmt.Print(sb.String())

			return nil
		},
	}
}
