package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int
	var date string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed rituals, goals and bonuses by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			dates := svc.HistoryDates()
			if date != "" {
				dates = []string{date}
			} else if days > 0 && len(dates) > days {
				dates = dates[:days]
			}

			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing completed yet)"))
				return nil
			}
			for _, d := range dates {
				entries := svc.History(d)
				total := 0
				for _, e := range entries {
					total += e.Points
				}
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s %s +%d", ui.IconCalendar, d, total)))
				for _, e := range entries {
					fmt.Fprintf(out, "  %s %s %s %s\n",
						e.CompletedAt.In(svc.Location()).Format("15:04"),
						ui.KindIcon(string(e.Kind)),
						e.Text,
						ui.Muted.Render(fmt.Sprintf("+%d", e.Points)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "Number of most recent days to show")
	cmd.Flags().StringVar(&date, "date", "", "Show a single date (YYYY-MM-DD)")

	return cmd
}
