package root

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/metrics"
	"ritualist/internal/ui"
)

func newRunCmd() *cobra.Command {
	var interval time.Duration
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the day/week reset scheduler in the foreground",
		Long: `Run the reset scheduler until interrupted.

The scheduler checks for a new calendar day once on start and then on every
interval. On a new day it clears non-weekend rituals, unlocks rewards whose
cooldown has passed and, on Mondays, starts a new week.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			if interval > 0 {
				env.cfg.PollInterval = interval
			}
			if metricsAddr != "" {
				env.cfg.MetricsAddr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := metrics.New()
			svc, cleanup, err := openServiceWith(ctx, env, engine.WithMetrics(m))
			if err != nil {
				return err
			}
			defer cleanup()

			var wg sync.WaitGroup
			var server *http.Server
			if env.cfg.MetricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", m.Handler())
				server = &http.Server{Addr: env.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				wg.Add(1)
				go func() {
					defer wg.Done()
					env.log.Info().Str("addr", env.cfg.MetricsAddr).Msg("metrics server starting")
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						env.log.Error().Err(err).Msg("metrics server error")
					}
				}()
			}

			out := cmd.OutOrStdout()
			sched := engine.NewScheduler(svc, env.cfg.PollInterval, env.log)
			sched.OnReset = func(r engine.ResetResult) {
				fmt.Fprintf(out, "%s %s → %s %s\n", ui.Good.Render(ui.IconSun+" "+string(r.Kind)), r.From, r.To,
					ui.Muted.Render(fmt.Sprintf("(week %d, %d cleared, %d unlocked)", r.Week, r.RitualsCleared, r.RewardsUnlocked)))
			}
			fmt.Fprintf(out, "%s every %s %s\n", ui.H2.Render("Watching for a new day"), env.cfg.PollInterval, ui.Muted.Render("(ctrl+c to stop)"))

			err = sched.Run(ctx)

			if server != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					env.log.Error().Err(err).Msg("metrics server shutdown error")
				}
			}
			wg.Wait()

			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval (default from RITUALIST_POLL_INTERVAL)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")

	return cmd
}
