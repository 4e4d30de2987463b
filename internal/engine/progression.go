package engine

import "time"

// PointsPerLevel is the amount of lifetime points each level costs.
const PointsPerLevel = 100

// LevelForTotal derives the level from lifetime points. It is the only
// source of truth for Progression.Level.
func LevelForTotal(total int) int {
	if total < 0 {
		total = 0
	}
	return total/PointsPerLevel + 1
}

// PointsToNextLevel returns how many more lifetime points the next level needs.
func PointsToNextLevel(total int) int {
	if total < 0 {
		total = 0
	}
	return LevelForTotal(total)*PointsPerLevel - total
}

// awardPoints credits both the balance and the lifetime total. A level-up
// appends one achievement per award, naming the new level.
func (s *Service) awardPoints(n int) slice {
	if n <= 0 {
		return 0
	}
	p := &s.state.Progression
	before := p.Level
	p.Points += n
	p.TotalEarned += n
	p.Level = LevelForTotal(p.TotalEarned)

	s.metrics.RecordAward(n)
	s.metrics.SetProgress(p.Level, p.Points)

	touched := sliceProgression
	if p.Level > before {
		s.log.Info().Int("level", p.Level).Msg("level up")
		touched |= s.addAchievement(levelText(p.Level))
	}
	return touched
}

// refundPoints claws back spendable balance only, floored at zero.
func (s *Service) refundPoints(n int) slice {
	if n <= 0 {
		return 0
	}
	p := &s.state.Progression
	p.Points -= n
	if p.Points < 0 {
		p.Points = 0
	}
	s.metrics.RecordRefund(n)
	s.metrics.SetProgress(p.Level, p.Points)
	return sliceProgression
}

type Status struct {
	Level         int
	Points        int
	TotalEarned   int
	Week          int
	ToNextLevel   int
	RitualsDone   int
	RitualsTotal  int
	PointsToday   int
	PendingTasks  int
	Mood          int
	LastResetDate string

	// MaxDailyPoints is what a full weekday of rituals earns.
	MaxDailyPoints int
	// UntilReset is the time left before the next local midnight.
	UntilReset time.Duration
}

func (s *Service) Progression() Progression {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Progression
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	out := Status{
		Level:         st.Progression.Level,
		Points:        st.Progression.Points,
		TotalEarned:   st.Progression.TotalEarned,
		Week:          st.Progression.Week,
		ToNextLevel:   PointsToNextLevel(st.Progression.TotalEarned),
		RitualsTotal:  len(st.Rituals),
		Mood:          st.Mood,
		LastResetDate: st.LastResetDate,

		MaxDailyPoints: s.catalog.MaxDailyPoints(),
		UntilReset:     s.untilReset(),
	}
	for key, done := range st.Rituals {
		if !done {
			continue
		}
		out.RitualsDone++
		if r, ok := s.catalog.Ritual(key); ok {
			out.PointsToday += r.Points
		}
	}
	for _, h := range Horizons {
		out.PendingTasks += len(st.Tasks[h])
	}
	return out
}
