package engine

import (
	"fmt"
	"slices"
)

func levelText(level int) string { return fmt.Sprintf("Level %d reached", level) }

func weekText(week int) string { return fmt.Sprintf("Week %d started", week) }

func streakText(name string, count int) string {
	if count >= 30 {
		return fmt.Sprintf("%s: a month without a break", name)
	}
	return fmt.Sprintf("%s: %d days in a row", name, count)
}

const (
	newDayText   = "New day"
	exportedText = "Data exported"
)

func rewardText(name string) string { return "Reward: " + name }

func bonusText(name string) string { return "Bonus: " + name }

// addAchievement appends to the log. Ids are sequential and never reused.
func (s *Service) addAchievement(text string) slice {
	var id int64 = 1
	if n := len(s.state.Achievements); n > 0 {
		id = s.state.Achievements[n-1].ID + 1
	}
	s.state.Achievements = append(s.state.Achievements, Achievement{
		ID:   id,
		Text: text,
		Time: s.now(),
	})
	return sliceAchievements
}

// Achievements returns up to limit entries, newest first. limit <= 0 means all.
func (s *Service) Achievements(limit int) []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.state.Achievements)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
