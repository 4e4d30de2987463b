package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const DefaultPollInterval = time.Minute

// Scheduler polls the service for day boundaries. Detection lags a real
// midnight by at most one interval.
type Scheduler struct {
	svc      *Service
	interval time.Duration
	log      zerolog.Logger

	// OnReset, when set, is called after every applied reset.
	OnReset func(ResetResult)
}

func NewScheduler(svc *Service, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Scheduler{svc: svc, interval: interval, log: log}
}

// Tick runs one check: a reset when the date changed, otherwise only the
// reward cooldown pass.
func (sc *Scheduler) Tick(ctx context.Context) ResetResult {
	res := sc.svc.CheckReset(ctx)
	if res.Applied {
		if sc.OnReset != nil {
			sc.OnReset(res)
		}
		return res
	}
	res.RewardsUnlocked = sc.svc.TickRewards(ctx)
	return res
}

// Run checks once immediately and then on every interval until ctx is done.
func (sc *Scheduler) Run(ctx context.Context) error {
	sc.log.Info().Dur("interval", sc.interval).Msg("scheduler started")
	sc.Tick(ctx)

	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sc.log.Info().Msg("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			sc.Tick(ctx)
		}
	}
}
