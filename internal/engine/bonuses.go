package engine

import (
	"context"

	"ritualist/internal/catalog"
)

type BonusResult struct {
	Result
	Bonus catalog.Bonus
}

// AddFinancialBonus credits a one-off bonus from the catalog. Bonuses are
// not rate limited.
func (s *Service) AddFinancialBonus(ctx context.Context, id string) BonusResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.catalog.Bonus(id)
	if !ok {
		return BonusResult{Result: rejected(ReasonUnknownBonus)}
	}
	today := s.today()

	touched := s.awardPoints(b.Points) | sliceHistory
	s.state.History[today] = append(s.state.History[today], HistoryEntry{
		ID:          b.ID,
		Text:        b.Name,
		Kind:        KindBonus,
		Points:      b.Points,
		CompletedAt: s.now(),
	})
	touched |= s.addAchievement(bonusText(b.Name))
	s.save(ctx, touched)

	s.log.Info().Str("bonus", b.ID).Int("points", b.Points).Msg("bonus added")
	return BonusResult{Result: applied(), Bonus: b}
}
