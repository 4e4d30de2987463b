package engine

import "strings"

// Badge is a derived milestone; unlike Achievement it is recomputed from
// state on every read and never stored.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgeChecker evaluates badges against a copy of the state.
type BadgeChecker struct {
	progression  Progression
	history      map[string][]HistoryEntry
	streaks      map[string]StreakRecord
	achievements []Achievement
}

func NewBadgeChecker(st *State) *BadgeChecker {
	return &BadgeChecker{
		progression:  st.Progression,
		history:      st.History,
		streaks:      st.Streaks,
		achievements: st.Achievements,
	}
}

func (c *BadgeChecker) Badges() []Badge {
	return []Badge{
		// Levels
		c.levelBadge("getting_started", "Getting Started", "Reach level 2", "🌱", 2),
		c.levelBadge("on_the_path", "On the Path", "Reach level 5", "🌿", 5),
		c.levelBadge("seasoned", "Seasoned", "Reach level 10", "🌳", 10),
		c.levelBadge("master", "Master", "Reach level 20", "💫", 20),

		// Completed tasks
		c.taskCountBadge("first_task", "First Task", "Complete 1 task", "✓", 1),
		c.taskCountBadge("productive", "Productive", "Complete 10 tasks", "📋", 10),
		c.taskCountBadge("achiever", "Achiever", "Complete 50 tasks", "🏅", 50),

		// Streaks
		c.streakBadge("week_streak", "On Fire", "Keep a ritual 7 days in a row", "🔥", 7),
		c.streakBadge("month_streak", "Unbreakable", "Keep a ritual 30 days in a row", "💎", 30),

		// Other
		c.weekBadge("second_week", "Still Here", "Reach week 2", "📅", 2),
		c.logBadge("first_reward", "Treat Yourself", "Claim a reward", "🎁", rewardText("")),
		c.logBadge("saver", "Saver", "Add a financial bonus", "💰", bonusText("")),
	}
}

func (c *BadgeChecker) levelBadge(id, name, desc, icon string, level int) Badge {
	earned := LevelForTotal(c.progression.TotalEarned) >= level
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *BadgeChecker) weekBadge(id, name, desc, icon string, week int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progression.Week >= week}
}

func (c *BadgeChecker) taskCountBadge(id, name, desc, icon string, count int) Badge {
	done := 0
	for _, entries := range c.history {
		for _, e := range entries {
			if Horizon(e.Kind).IsValid() {
				done++
			}
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: done >= count}
}

// streakBadge also counts streaks that were broken after reaching the
// milestone, using the achievement log.
func (c *BadgeChecker) streakBadge(id, name, desc, icon string, days int) Badge {
	earned := false
	for _, rec := range c.streaks {
		if rec.Count >= days {
			earned = true
			break
		}
	}
	if !earned {
		text := streakText("", days)
		for _, a := range c.achievements {
			if strings.HasSuffix(a.Text, text) {
				earned = true
				break
			}
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *BadgeChecker) logBadge(id, name, desc, icon, prefix string) Badge {
	earned := false
	for _, a := range c.achievements {
		if strings.HasPrefix(a.Text, prefix) {
			earned = true
			break
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (s *Service) Badges() []Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewBadgeChecker(s.state).Badges()
}
