package task

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func submissionsCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:   "view-submissions",
		Usage:  "List all submitted work across tasks",
		Flags:  flags,
		Before: common.WithConfigFileSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskbotClient, err := common.GetTaskbotClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create taskbot client")
			}

			submissions, err := taskbotClient.ListSubmissions(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if len(submissions) == 0 {
				fmt.Println("No submissions found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "TASK\tMEMBER\tLINK")

			for _, s := range submissions {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.TaskName, s.UserName, s.Link)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
