package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, points, today's progress and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Status()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("Week %d", st.Week)))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (total %d, next level in %d)", st.Points, st.TotalEarned, st.ToNextLevel)))
			fmt.Fprintln(out, ui.LabelValue("Rituals", fmt.Sprintf("%d/%d done", st.RitualsDone, st.RitualsTotal)))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%s +%d/%d pts", ui.ProgressBar(st.PointsToday, st.MaxDailyPoints, 20),
				st.PointsToday, st.MaxDailyPoints)))
			fmt.Fprintln(out, ui.LabelValue("Next reset in", ui.Countdown(st.UntilReset)))
			fmt.Fprintln(out, ui.LabelValue("Pending goals", st.PendingTasks))
			fmt.Fprintln(out, ui.LabelValue("Mood", fmt.Sprintf("%s %d/%d", ui.MoodFace(st.Mood), st.Mood, engine.MoodMax)))

			streaks := svc.TopStreaks(5)
			if len(streaks) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Streaks"))
				for _, s := range streaks {
					fmt.Fprintf(out, "- %s: %d days %s\n", s.Name, s.Count, ui.Muted.Render("(last "+s.LastDate+")"))
				}
			}
			return nil
		},
	}

	return cmd
}
