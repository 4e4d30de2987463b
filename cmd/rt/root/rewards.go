package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "List rewards and their cooldowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			points := svc.Progression().Points
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGift, "Rewards"))
			fmt.Fprintln(out, ui.LabelValue("Balance", points))
			for _, r := range svc.Rewards() {
				state := ui.Good.Render("available")
				switch {
				case r.Claimed && r.AvailableAt != nil:
					state = ui.Muted.Render(fmt.Sprintf("%s until %s", ui.IconLock, r.AvailableAt.In(svc.Location()).Format("Mon Jan 2 15:04")))
				case r.Cost > points:
					state = ui.Warn.Render(fmt.Sprintf("need %d more", r.Cost-points))
				}
				fmt.Fprintf(out, "  %s %-22s %4d pts  every %2dd  %s\n", ui.Key.Render(fmt.Sprint(r.ID)), r.Name, r.Cost, r.ResetDays, state)
			}
			return nil
		},
	}

	return cmd
}
