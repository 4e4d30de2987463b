package engine

import (
	"context"
	"slices"
	"strings"

	"ritualist/internal/catalog"
)

type ToggleResult struct {
	Result
	Key    string
	Active bool
	Points int
	Streak int
}

// ToggleRitual flips a ritual for today. Turning it on awards its points,
// counts toward the streak and logs a habit entry; turning it off reverses
// the points, breaks the streak and drops the entry it logged.
func (s *Service) ToggleRitual(ctx context.Context, key string) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = strings.TrimSpace(key)
	def, ok := s.catalog.Ritual(key)
	if !ok {
		return ToggleResult{Result: rejected(ReasonUnknownRitual), Key: key}
	}
	key = def.Key
	today := s.today()

	active := !s.state.Rituals[key]
	s.state.Rituals[key] = active
	touched := sliceRituals

	if active {
		touched |= s.awardPoints(def.Points)
		touched |= s.recordCompletion(key, today)
		s.state.History[today] = append(s.state.History[today], HistoryEntry{
			ID:          key,
			Text:        def.Name,
			Kind:        KindHabit,
			Points:      def.Points,
			CompletedAt: s.now(),
		})
	} else {
		// Weekend rituals survive the day reset, so the entry may be older.
		since := s.state.Streaks[key].LastDate
		touched |= s.refundPoints(def.Points)
		touched |= s.recordReset(key)
		if !s.removeHistoryEntry(today, key, KindHabit) && since != "" {
			s.removeHistoryEntry(since, key, KindHabit)
		}
	}
	touched |= sliceHistory

	s.metrics.RecordToggle(active)
	s.log.Debug().Str("ritual", key).Bool("active", active).Msg("ritual toggled")
	s.save(ctx, touched)

	return ToggleResult{
		Result: applied(),
		Key:    key,
		Active: active,
		Points: def.Points,
		Streak: s.state.Streaks[key].Count,
	}
}

// removeHistoryEntry drops the last entry in the date bucket matching id and kind.
func (s *Service) removeHistoryEntry(date, id string, kind HistoryKind) bool {
	bucket := s.state.History[date]
	for i := len(bucket) - 1; i >= 0; i-- {
		if bucket[i].ID == id && bucket[i].Kind == kind {
			bucket = slices.Delete(bucket, i, i+1)
			if len(bucket) == 0 {
				delete(s.state.History, date)
			} else {
				s.state.History[date] = bucket
			}
			return true
		}
	}
	return false
}

type RitualView struct {
	catalog.Ritual
	Active bool
	Streak int
}

// Rituals lists every catalog ritual with today's flag, in catalog order.
func (s *Service) Rituals() []RitualView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RitualView, 0, len(s.catalog.Rituals))
	for _, r := range s.catalog.Rituals {
		out = append(out, RitualView{
			Ritual: r,
			Active: s.state.Rituals[r.Key],
			Streak: s.state.Streaks[r.Key].Count,
		})
	}
	return out
}

// RitualsBySlot groups Rituals by time slot, skipping empty slots.
func (s *Service) RitualsBySlot() map[catalog.Slot][]RitualView {
	out := map[catalog.Slot][]RitualView{}
	for _, r := range s.Rituals() {
		out[r.Slot] = append(out[r.Slot], r)
	}
	return out
}
