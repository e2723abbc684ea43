package task

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:  paramRole,
			Usage: "Only list tasks assigned to this role",
		},
	)

	return &cli.Command{
		Name:   "list-tasks",
		Usage:  "List tasks, optionally filtered by assigned role",
		Flags:  flags,
		Before: common.WithConfigFileSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskbotClient, err := common.GetTaskbotClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create taskbot client")
			}

			tasks, err := taskbotClient.ListTasks(ctx, cCtx.String(paramRole))
			if err != nil {
				return errors.WithStack(err)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tNAME\tROLE\tSTATUS\tDUE")

			for _, t := range tasks {
				due := time.Unix(t.DueDate, 0).UTC()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s (%s)\n",
					t.ID, t.Name, t.RoleName, t.Status,
					due.Format("2006-01-02"), humanize.Time(due),
				)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
