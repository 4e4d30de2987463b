package engine

import (
	"context"
	"slices"
	"time"
)

type ClaimResult struct {
	Result
	Reward Reward
}

// ClaimReward spends points on a reward. Claimed rewards stay locked until
// their cooldown elapses.
func (s *Service) ClaimReward(ctx context.Context, id int) ClaimResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.Rewards, func(r Reward) bool { return r.ID == id })
	if idx < 0 {
		return ClaimResult{Result: rejected(ReasonUnknownReward)}
	}
	r := &s.state.Rewards[idx]
	if r.Claimed {
		return ClaimResult{Result: rejected(ReasonAlreadyClaimed), Reward: *r}
	}
	p := &s.state.Progression
	if p.Points < r.Cost {
		return ClaimResult{Result: rejected(ReasonInsufficientPoints), Reward: *r}
	}

	p.Points -= r.Cost
	now := s.now()
	r.Claimed = true
	r.ClaimedAt = &now

	touched := sliceProgression | sliceRewards
	touched |= s.addAchievement(rewardText(r.Name))
	s.metrics.RecordClaim(r.Cost)
	s.metrics.SetProgress(p.Level, p.Points)
	s.save(ctx, touched)

	s.log.Info().Int("reward", r.ID).Int("cost", r.Cost).Msg("reward claimed")
	return ClaimResult{Result: applied(), Reward: *r}
}

// tickRewards unlocks every claimed reward whose cooldown has elapsed. It
// reports how many were unlocked; a second call with the same now is a no-op.
func (s *Service) tickRewards(now time.Time) int {
	n := 0
	for i := range s.state.Rewards {
		r := &s.state.Rewards[i]
		if !r.Claimed || r.ClaimedAt == nil {
			continue
		}
		if elapsedDays(*r.ClaimedAt, now) >= r.ResetDays {
			r.Claimed = false
			r.ClaimedAt = nil
			n++
		}
	}
	return n
}

// RewardView adds the unlock time for claimed rewards.
type RewardView struct {
	Reward
	AvailableAt *time.Time
}

func (s *Service) Rewards() []RewardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RewardView, 0, len(s.state.Rewards))
	for _, r := range s.state.Rewards {
		v := RewardView{Reward: r}
		if r.Claimed && r.ClaimedAt != nil {
			at := r.ClaimedAt.Add(time.Duration(r.ResetDays) * 24 * time.Hour)
			v.AvailableAt = &at
		}
		out = append(out, v)
	}
	return out
}
