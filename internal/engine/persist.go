package engine

import (
	"context"
	"encoding/json"
	"time"

	"ritualist/internal/storage"
)

// Persistence keys, one per independent state slice.
const (
	KeyProgression   = "progression"
	KeyRituals       = "rituals"
	KeyStreaks       = "streaks"
	KeyTasksDaily    = "tasks.daily"
	KeyTasksWeekly   = "tasks.weekly"
	KeyTasksMonthly  = "tasks.monthly"
	KeyHistory       = "completedHistory"
	KeyRewards       = "rewards"
	KeyAchievements  = "achievements"
	KeyLastResetDate = "lastResetDate"
	KeyMood          = "mood"
)

type slice uint16

const (
	sliceProgression slice = 1 << iota
	sliceRituals
	sliceStreaks
	sliceTasksDaily
	sliceTasksWeekly
	sliceTasksMonthly
	sliceHistory
	sliceRewards
	sliceAchievements
	sliceLastReset
	sliceMood
)

func taskSlice(h Horizon) slice {
	switch h {
	case HorizonWeekly:
		return sliceTasksWeekly
	case HorizonMonthly:
		return sliceTasksMonthly
	default:
		return sliceTasksDaily
	}
}

func taskKey(h Horizon) string {
	switch h {
	case HorizonWeekly:
		return KeyTasksWeekly
	case HorizonMonthly:
		return KeyTasksMonthly
	default:
		return KeyTasksDaily
	}
}

// loadJSON decodes key into dst. It reports false when the key is missing
// or unreadable; dst is left untouched in that case.
func loadJSON[T any](ctx context.Context, s *Service, key string, dst *T) bool {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read failed, using default")
		return false
	}
	if raw == nil {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt value, using default")
		return false
	}
	*dst = v
	return true
}

func (s *Service) load(ctx context.Context) {
	today := s.today()
	st := newState(s.catalog, today)
	var seed slice

	var p Progression
	if loadJSON(ctx, s, KeyProgression, &p) {
		st.Progression = p
	}
	if st.Progression.Points < 0 {
		st.Progression.Points = 0
	}
	if st.Progression.TotalEarned < 0 {
		st.Progression.TotalEarned = 0
	}
	if st.Progression.Week < 1 {
		st.Progression.Week = 1
	}
	// Level is a cache of the formula; never trust the stored value.
	st.Progression.Level = LevelForTotal(st.Progression.TotalEarned)

	var rituals map[string]bool
	if loadJSON(ctx, s, KeyRituals, &rituals) {
		st.Rituals = normalizeRituals(rituals, s.catalog)
	}

	var streaks map[string]StreakRecord
	if loadJSON(ctx, s, KeyStreaks, &streaks) && streaks != nil {
		st.Streaks = streaks
	}

	for _, h := range Horizons {
		var tasks []Task
		if loadJSON(ctx, s, taskKey(h), &tasks) && tasks != nil {
			for i := range tasks {
				tasks[i].Horizon = h
			}
			st.Tasks[h] = tasks
		}
	}

	var history map[string][]HistoryEntry
	if loadJSON(ctx, s, KeyHistory, &history) && history != nil {
		st.History = history
	}

	var rewards []Reward
	if loadJSON(ctx, s, KeyRewards, &rewards) && rewards != nil {
		st.Rewards = rewards
	} else {
		seed |= sliceRewards
	}
	now := s.now()
	for i := range st.Rewards {
		if st.Rewards[i].Claimed && st.Rewards[i].ClaimedAt == nil {
			// A claim without a timestamp could never expire; start its cooldown now.
			t := now
			st.Rewards[i].ClaimedAt = &t
		}
	}

	var achievements []Achievement
	if loadJSON(ctx, s, KeyAchievements, &achievements) && achievements != nil {
		st.Achievements = achievements
	}

	var last string
	if loadJSON(ctx, s, KeyLastResetDate, &last) && last != "" {
		st.LastResetDate = last
	} else {
		seed |= sliceLastReset
	}

	var mood int
	if loadJSON(ctx, s, KeyMood, &mood) && mood >= MoodMin && mood <= MoodMax {
		st.Mood = mood
	}

	s.state = st
	if seed != 0 {
		s.save(ctx, seed)
	}
}

// save writes the given slices in one batch. A failed write is logged and
// swallowed; the in-memory state stays authoritative.
func (s *Service) save(ctx context.Context, which slice) {
	var entries []storage.Entry
	put := func(flag slice, key string, v any) {
		if which&flag == 0 {
			return
		}
		b, err := json.Marshal(v)
		if err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("encode failed")
			return
		}
		entries = append(entries, storage.Entry{Key: key, Value: b})
	}

	st := s.state
	put(sliceProgression, KeyProgression, st.Progression)
	put(sliceRituals, KeyRituals, st.Rituals)
	put(sliceStreaks, KeyStreaks, st.Streaks)
	put(sliceTasksDaily, KeyTasksDaily, st.Tasks[HorizonDaily])
	put(sliceTasksWeekly, KeyTasksWeekly, st.Tasks[HorizonWeekly])
	put(sliceTasksMonthly, KeyTasksMonthly, st.Tasks[HorizonMonthly])
	put(sliceHistory, KeyHistory, st.History)
	put(sliceRewards, KeyRewards, st.Rewards)
	put(sliceAchievements, KeyAchievements, st.Achievements)
	put(sliceLastReset, KeyLastResetDate, st.LastResetDate)
	put(sliceMood, KeyMood, st.Mood)

	if len(entries) == 0 {
		return
	}
	start := time.Now()
	if err := s.store.SetMany(ctx, entries); err != nil {
		s.log.Warn().Err(err).Int("entries", len(entries)).Msg("persist failed")
		return
	}
	s.log.Debug().Int("entries", len(entries)).Dur("took", time.Since(start)).Msg("state persisted")
}
