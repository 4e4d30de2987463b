package engine

import (
	"slices"
	"strings"
)

var streakMilestones = []int{7, 30}

// recordCompletion counts at most one completion per calendar date.
func (s *Service) recordCompletion(key, today string) slice {
	rec := s.state.Streaks[key]
	if rec.LastDate == today {
		return 0
	}
	rec.Count++
	rec.LastDate = today
	s.state.Streaks[key] = rec

	touched := sliceStreaks
	if slices.Contains(streakMilestones, rec.Count) {
		name := key
		if r, ok := s.catalog.Ritual(key); ok {
			name = r.Name
		}
		touched |= s.addAchievement(streakText(name, rec.Count))
	}
	return touched
}

// recordReset zeroes the count. LastDate is kept, so a same-day redo does
// not count again.
func (s *Service) recordReset(key string) slice {
	rec := s.state.Streaks[key]
	rec.Count = 0
	s.state.Streaks[key] = rec
	return sliceStreaks
}

type Streak struct {
	Key      string
	Name     string
	Count    int
	LastDate string
}

func (s *Service) Streak(key string) StreakRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Streaks[key]
}

// TopStreaks returns the n longest running streaks, longest first.
func (s *Service) TopStreaks(n int) []Streak {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Streak
	for key, rec := range s.state.Streaks {
		if rec.Count <= 0 {
			continue
		}
		name := key
		if r, ok := s.catalog.Ritual(key); ok {
			name = r.Name
		}
		out = append(out, Streak{Key: key, Name: name, Count: rec.Count, LastDate: rec.LastDate})
	}
	slices.SortFunc(out, func(a, b Streak) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
