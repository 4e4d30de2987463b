package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority int
	var horizon string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a daily, weekly or monthly goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := engine.ParseHorizon(horizon)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.AddTask(ctx, strings.Join(args, " "), priority, h)
			if !res.Applied {
				return rejection(res.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.KindIcon(string(h)),
				res.Task.Text,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d, id %s)", h, res.Task.Priority, engine.ShortID(res.Task.ID))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&priority, "priority", "p", 1, "Points credited on completion")
	cmd.Flags().StringVarP(&horizon, "horizon", "H", string(engine.HorizonDaily), "Horizon (daily|weekly|monthly)")

	return cmd
}
