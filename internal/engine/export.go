package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"
)

// Snapshot is the portable backup document.
type Snapshot struct {
	Week         int                       `json:"week"`
	Points       int                       `json:"points"`
	Level        int                       `json:"level"`
	TotalPoints  int                       `json:"totalPoints"`
	Rituals      map[string]bool           `json:"rituals"`
	Streaks      map[string]StreakRecord   `json:"streaks"`
	DailyTasks   []Task                    `json:"dailyTasks"`
	WeeklyGoals  []Task                    `json:"weeklyGoals"`
	MonthlyGoals []Task                    `json:"monthlyGoals"`
	History      map[string][]HistoryEntry `json:"completedHistory"`
	Rewards      []Reward                  `json:"rewards"`
	Mood         int                       `json:"mood"`
	Achievements []Achievement             `json:"achievements"`
	ExportDate   time.Time                 `json:"exportDate"`
}

// Export captures the full state, then logs the export itself. The new
// achievement is not part of the returned snapshot.
func (s *Service) Export(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	history := make(map[string][]HistoryEntry, len(st.History))
	for d, entries := range st.History {
		history[d] = slices.Clone(entries)
	}
	snap := Snapshot{
		Week:         st.Progression.Week,
		Points:       st.Progression.Points,
		Level:        st.Progression.Level,
		TotalPoints:  st.Progression.TotalEarned,
		Rituals:      maps.Clone(st.Rituals),
		Streaks:      maps.Clone(st.Streaks),
		DailyTasks:   nonNil(st.Tasks[HorizonDaily]),
		WeeklyGoals:  nonNil(st.Tasks[HorizonWeekly]),
		MonthlyGoals: nonNil(st.Tasks[HorizonMonthly]),
		History:      history,
		Rewards:      nonNil(st.Rewards),
		Mood:         st.Mood,
		Achievements: nonNil(st.Achievements),
		ExportDate:   s.now(),
	}

	s.save(ctx, s.addAchievement(exportedText))
	s.log.Info().Msg("data exported")
	return snap
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

// MarshalSnapshot renders a snapshot as two-space indented JSON.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(b, '\n'), nil
}

// BackupFileName is the default export file name for a date.
func BackupFileName(date string) string {
	return fmt.Sprintf("ritualist-backup-%s.json", date)
}
