package engine

import "context"

func (s *Service) SetMood(ctx context.Context, v int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v < MoodMin || v > MoodMax {
		return rejected(ReasonOutOfRange)
	}
	s.state.Mood = v
	s.save(ctx, sliceMood)
	return applied()
}

func (s *Service) Mood() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mood
}
