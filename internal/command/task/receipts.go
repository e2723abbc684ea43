package task

import (
	"fmt"
	"strings"

	"github.com/bornholm/taskbot/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func receiptsCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "receive-list",
		Usage:     "Show who acknowledged reception of a task",
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

			receipts, err := taskbotClient.ListReceipts(ctx, taskID)
			if err != nil {
				return errors.WithStack(err)
			}

			if receipts.Count == 0 {
				fmt.Println("No receipts yet.")
				return nil
			}

			fmt.Printf("%d member(s) received this task: %s\n", receipts.Count, strings.Join(receipts.Names, ", "))

			return nil
		},
	}
}
