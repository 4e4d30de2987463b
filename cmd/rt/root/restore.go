package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a goal completed today (undo completion)",
		Long: `Move a goal completed today back to its pending list.

This will:
- Remove today's history entry
- Refund the points that were credited (lifetime total and level are kept)

Goals completed on earlier days cannot be restored.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.RestoreTask(ctx, args[0])
			if !res.Applied {
				return rejectionf(res.Reason, "%s", args[0])
			}
			line := fmt.Sprintf("%s %s %s %s",
				ui.Warn.Render(ui.IconLoop+" Restored"),
				ui.KindIcon(string(res.Task.Horizon)),
				res.Task.Text,
				ui.Muted.Render(fmt.Sprintf("(-%d)", res.Task.Priority)))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", svc.Progression().Points))
			return nil
		},
	}

	return cmd
}
