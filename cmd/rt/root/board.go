package root

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI board",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, cleanup, err := openServiceWith(ctx, env)
			if err != nil {
				return err
			}
			defer cleanup()

			sched := engine.NewScheduler(svc, env.cfg.PollInterval, env.log)
			return tui.RunBoard(ctx, svc, sched, env.cfg.PollInterval, cmd.OutOrStdout())
		},
	}

	return cmd
}
