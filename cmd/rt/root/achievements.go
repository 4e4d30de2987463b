package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"log"},
		Short:   "Show the achievement log and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			log := svc.Achievements(limit)
			if len(log) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none yet)"))
			}
			for _, a := range log {
				fmt.Fprintf(out, "  %s %s\n", ui.Muted.Render(a.Time.In(svc.Location()).Format(time.DateTime)), a.Text)
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Badges"))
			for _, b := range svc.Badges() {
				mark := ui.Muted.Render("·")
				if b.Earned {
					mark = ui.Good.Render("✓")
				}
				fmt.Fprintf(out, "  %s %s %s %s\n", mark, b.Icon, b.Name, ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries (0 for all)")

	return cmd
}
