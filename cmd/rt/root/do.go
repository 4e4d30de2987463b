package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a goal (id or the short id from `rt list`)",
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

			before := svc.Progression()
			t, reason := svc.ResolveTask(args[0])
			if reason != engine.ReasonNone {
				return rejectionf(reason, "%s", args[0])
			}
			res := svc.CompleteTask(ctx, t.ID, t.Horizon)
			if !res.Applied {
				return rejection(res.Reason)
			}
			after := svc.Progression()

			if res.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), t.Text, ui.Muted.Render(fmt.Sprintf("(+%d)", t.Priority)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconLoop+" Reopened"), t.Text, ui.Muted.Render(fmt.Sprintf("(-%d)", t.Priority)))
			}
			if after.Level > before.Level {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", before.Level, after.Level)))
			}
			return nil
		},
	}

	return cmd
}
