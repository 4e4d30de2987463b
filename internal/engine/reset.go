package engine

import (
	"context"
	"time"

	"ritualist/internal/catalog"
)

type ResetKind string

const (
	ResetNone ResetKind = "none"
	ResetDay  ResetKind = "day"
	ResetWeek ResetKind = "week"
)

type ResetResult struct {
	Result
	Kind            ResetKind
	From            string
	To              string
	Week            int
	RitualsCleared  int
	RewardsUnlocked int
}

// CheckReset compares today with the last reset date. On a crossing it
// clears every non-weekend ritual, unlocks expired rewards and moves the
// cursor. Mondays also start a new week. Several missed days collapse into
// one crossing.
func (s *Service) CheckReset(ctx context.Context) ResetResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := DateOf(now, s.loc)
	from := s.state.LastResetDate
	if today == from {
		return ResetResult{Result: rejected(ReasonNoBoundary), Kind: ResetNone, From: from, To: today, Week: s.state.Progression.Week}
	}

	cleared := 0
	for _, r := range s.catalog.Rituals {
		if r.Slot == catalog.SlotWeekend {
			continue
		}
		if s.state.Rituals[r.Key] {
			cleared++
		}
		s.state.Rituals[r.Key] = false
	}
	unlocked := s.tickRewards(now)
	s.state.LastResetDate = today

	touched := sliceRituals | sliceRewards | sliceLastReset
	kind := ResetDay
	if now.Weekday() == time.Monday {
		kind = ResetWeek
		s.state.Progression.Week++
		touched |= sliceProgression
		touched |= s.addAchievement(weekText(s.state.Progression.Week))
	} else {
		touched |= s.addAchievement(newDayText)
	}
	s.save(ctx, touched)
	s.metrics.RecordReset(string(kind))

	s.log.Info().
		Str("from", from).
		Str("to", today).
		Str("kind", string(kind)).
		Int("cleared", cleared).
		Int("unlocked", unlocked).
		Msg("reset applied")

	return ResetResult{
		Result:          applied(),
		Kind:            kind,
		From:            from,
		To:              today,
		Week:            s.state.Progression.Week,
		RitualsCleared:  cleared,
		RewardsUnlocked: unlocked,
	}
}

// TickRewards unlocks rewards whose cooldown has elapsed and persists only
// when something changed.
func (s *Service) TickRewards(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.tickRewards(s.now())
	if n > 0 {
		s.save(ctx, sliceRewards)
		s.log.Info().Int("unlocked", n).Msg("rewards unlocked")
	}
	return n
}

// untilReset is the time left before the next local midnight, when
// CheckReset starts a new day.
func (s *Service) untilReset() time.Duration {
	now := s.now()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.loc)
	return next.Sub(now)
}
