package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ritualist/internal/catalog"
	"ritualist/internal/storage"
)

func massageCatalog() *catalog.Catalog {
	cat := catalog.Default()
	cat.Rewards = []catalog.Reward{{ID: 1, Name: "Massage", Cost: 50, ResetDays: 7}}
	return cat
}

func TestClaimRewardGuards(t *testing.T) {
	store := storage.NewMemoryKV()
	putProgression(t, store, Progression{Points: 30, TotalEarned: 30, Level: 1, Week: 1})
	f := newFixtureWith(t, wednesday, store, massageCatalog())
	ctx := context.Background()

	assert.Equal(t, ReasonUnknownReward, f.svc.ClaimReward(ctx, 99).Reason)

	res := f.svc.ClaimReward(ctx, 1)
	assert.False(t, res.Applied)
	assert.Equal(t, ReasonInsufficientPoints, res.Reason)
	assert.Equal(t, 30, f.svc.Progression().Points)
	assert.False(t, f.svc.Rewards()[0].Claimed)
	assert.Empty(t, f.svc.Achievements(0))
}

// Scenario C.
func TestRewardCooldown(t *testing.T) {
	store := storage.NewMemoryKV()
	putProgression(t, store, Progression{Points: 60, TotalEarned: 60, Level: 1, Week: 1})
	f := newFixtureWith(t, wednesday, store, massageCatalog())
	ctx := context.Background()

	res := f.svc.ClaimReward(ctx, 1)
	require.True(t, res.Applied)
	assert.Equal(t, 10, f.svc.Progression().Points)
	assert.Equal(t, 60, f.svc.Progression().TotalEarned)

	views := f.svc.Rewards()
	require.True(t, views[0].Claimed)
	require.NotNil(t, views[0].ClaimedAt)
	require.NotNil(t, views[0].AvailableAt)
	assert.Equal(t, wednesday.AddDate(0, 0, 7), *views[0].AvailableAt)

	log := f.svc.Achievements(1)
	require.Len(t, log, 1)
	assert.Equal(t, "Reward: Massage", log[0].Text)

	f.svc.mu.Lock()
	f.svc.state.Progression.Points = 500
	f.svc.mu.Unlock()
	assert.Equal(t, ReasonAlreadyClaimed, f.svc.ClaimReward(ctx, 1).Reason)

	f.clock.AdvanceDays(6)
	assert.Equal(t, 0, f.svc.TickRewards(ctx))
	assert.True(t, f.svc.Rewards()[0].Claimed)

	f.clock.Advance(23*time.Hour + 59*time.Minute)
	assert.Equal(t, 0, f.svc.TickRewards(ctx))

	f.clock.Advance(time.Minute)
	assert.Equal(t, 1, f.svc.TickRewards(ctx))
	assert.False(t, f.svc.Rewards()[0].Claimed)
	assert.Nil(t, f.svc.Rewards()[0].ClaimedAt)

	assert.Equal(t, 0, f.svc.TickRewards(ctx), "tick is idempotent")
}

func TestClaimDeductsExactCost(t *testing.T) {
	store := storage.NewMemoryKV()
	putProgression(t, store, Progression{Points: 100, TotalEarned: 100, Level: 2, Week: 1})
	f := newFixtureWith(t, wednesday, store, catalog.Default())
	ctx := context.Background()

	for _, id := range []int{1, 3, 6} {
		require.True(t, f.svc.ClaimReward(ctx, id).Applied)
	}
	assert.Equal(t, 100-10-40-30, f.svc.Progression().Points)
	assert.Equal(t, 2, f.svc.Progression().Level)
}
