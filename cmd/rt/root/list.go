package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newListCmd() *cobra.Command {
	var horizon string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending goals by horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			horizons := engine.Horizons
			if horizon != "" {
				h, err := engine.ParseHorizon(horizon)
				if err != nil {
					return err
				}
				horizons = []engine.Horizon{h}
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, h := range horizons {
				tasks := svc.Tasks(h)
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s %s (%d)", ui.KindIcon(string(h)), ui.SlotTitle(string(h)), len(tasks))))
				if len(tasks) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("  (empty)"))
					continue
				}
				for _, t := range tasks {
					fmt.Fprintf(out, "  %s %s %s\n", ui.Key.Render(engine.ShortID(t.ID)), t.Text, ui.Muted.Render(fmt.Sprintf("+%d", t.Priority)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&horizon, "horizon", "H", "", "Only this horizon (daily|weekly|monthly)")

	return cmd
}
