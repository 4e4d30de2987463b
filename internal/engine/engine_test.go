package engine

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ritualist/internal/catalog"
	"ritualist/internal/storage"
)

// wednesday is 2026-03-04 09:30 UTC.
var wednesday = time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	clock *FakeClock
	store *storage.MemoryKV
}

func newFixture(t *testing.T, start time.Time) *fixture {
	t.Helper()
	return newFixtureWith(t, start, storage.NewMemoryKV(), catalog.Default())
}

func newFixtureWith(t *testing.T, start time.Time, store *storage.MemoryKV, cat *catalog.Catalog) *fixture {
	t.Helper()
	clock := NewFakeClock(start)
	n := 0
	svc := NewService(context.Background(), store, cat,
		WithClock(clock),
		WithLocation(time.UTC),
		WithLogger(zerolog.Nop()),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		}),
	)
	return &fixture{svc: svc, clock: clock, store: store}
}

func putProgression(t *testing.T, store *storage.MemoryKV, p Progression) {
	t.Helper()
	store.Put(KeyProgression, []byte(fmt.Sprintf(
		`{"points":%d,"totalPointsEverEarned":%d,"level":%d,"week":%d}`,
		p.Points, p.TotalEarned, p.Level, p.Week)))
}

func TestLevelFormula(t *testing.T) {
	cases := []struct {
		total, level, toNext int
	}{
		{0, 1, 100},
		{99, 1, 1},
		{100, 2, 100},
		{105, 2, 95},
		{250, 3, 50},
		{-5, 1, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForTotal(tc.total), "level for %d", tc.total)
		assert.Equal(t, tc.toNext, PointsToNextLevel(tc.total), "to next for %d", tc.total)
	}
}

func TestPointsFloorAndLevelInvariant(t *testing.T) {
	f := newFixture(t, wednesday)
	rng := rand.New(rand.NewSource(42))

	f.svc.mu.Lock()
	defer f.svc.mu.Unlock()

	prevLevel := f.svc.state.Progression.Level
	prevTotal := 0
	for i := 0; i < 500; i++ {
		n := rng.Intn(40) + 1
		if rng.Intn(2) == 0 {
			f.svc.awardPoints(n)
		} else {
			f.svc.refundPoints(n)
		}
		p := f.svc.state.Progression
		require.GreaterOrEqual(t, p.Points, 0)
		require.GreaterOrEqual(t, p.Level, prevLevel)
		require.GreaterOrEqual(t, p.TotalEarned, prevTotal)
		require.Equal(t, p.TotalEarned/100+1, p.Level)
		prevLevel, prevTotal = p.Level, p.TotalEarned
	}
}

func TestRefundNeverTouchesTotal(t *testing.T) {
	f := newFixture(t, wednesday)
	f.svc.mu.Lock()
	f.svc.awardPoints(4)
	f.svc.refundPoints(50)
	p := f.svc.state.Progression
	f.svc.mu.Unlock()

	assert.Equal(t, 0, p.Points)
	assert.Equal(t, 4, p.TotalEarned)
}

// Scenario B: one level-up achievement for crossing 100.
func TestAwardCrossingLevelAppendsOneAchievement(t *testing.T) {
	store := storage.NewMemoryKV()
	putProgression(t, store, Progression{Points: 95, TotalEarned: 95, Level: 1, Week: 1})
	f := newFixtureWith(t, wednesday, store, catalog.Default())

	f.svc.mu.Lock()
	f.svc.awardPoints(10)
	f.svc.mu.Unlock()

	p := f.svc.Progression()
	assert.Equal(t, 105, p.TotalEarned)
	assert.Equal(t, 2, p.Level)

	log := f.svc.Achievements(0)
	require.Len(t, log, 1)
	assert.Equal(t, "Level 2 reached", log[0].Text)
}

func TestMultiLevelJumpFiresOnce(t *testing.T) {
	f := newFixture(t, wednesday)
	f.svc.mu.Lock()
	f.svc.awardPoints(250)
	f.svc.mu.Unlock()

	log := f.svc.Achievements(0)
	require.Len(t, log, 1)
	assert.Equal(t, "Level 3 reached", log[0].Text)
	assert.Equal(t, 3, f.svc.Progression().Level)
}

func TestAchievementsNewestFirstWithSequentialIDs(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()
	f.svc.AddFinancialBonus(ctx, "budget_review")
	f.svc.AddFinancialBonus(ctx, "no_impulse_buy")
	f.svc.AddFinancialBonus(ctx, "invested")

	all := f.svc.Achievements(0)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, "Bonus: Made an investment", all[0].Text)
	assert.Equal(t, int64(1), all[2].ID)

	latest := f.svc.Achievements(2)
	require.Len(t, latest, 2)
	assert.Equal(t, int64(2), latest[1].ID)
}

func TestFinancialBonus(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	res := f.svc.AddFinancialBonus(ctx, "nope")
	assert.False(t, res.Applied)
	assert.Equal(t, ReasonUnknownBonus, res.Reason)

	res = f.svc.AddFinancialBonus(ctx, " Side_Income ")
	require.True(t, res.Applied)
	assert.Equal(t, 15, f.svc.Progression().Points)

	hist := f.svc.History(f.svc.Today())
	require.Len(t, hist, 1)
	assert.Equal(t, KindBonus, hist[0].Kind)
	assert.Equal(t, "side_income", hist[0].ID)
}

func TestSetMood(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	assert.Equal(t, DefaultMood, f.svc.Mood())
	assert.Equal(t, ReasonOutOfRange, f.svc.SetMood(ctx, 0).Reason)
	assert.Equal(t, ReasonOutOfRange, f.svc.SetMood(ctx, 11).Reason)
	assert.True(t, f.svc.SetMood(ctx, 8).Applied)
	assert.Equal(t, 8, f.svc.Mood())
}

func TestStatus(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()
	f.svc.ToggleRitual(ctx, "sport")
	f.svc.ToggleRitual(ctx, "water")
	f.svc.AddTask(ctx, "Call the bank", 2, HorizonWeekly)

	st := f.svc.Status()
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 7, st.Points)
	assert.Equal(t, 93, st.ToNextLevel)
	assert.Equal(t, 2, st.RitualsDone)
	assert.Equal(t, 20, st.RitualsTotal)
	assert.Equal(t, 7, st.PointsToday)
	assert.Equal(t, 1, st.PendingTasks)
	assert.Equal(t, "2026-03-04", st.LastResetDate)
	assert.Equal(t, catalog.Default().MaxDailyPoints(), st.MaxDailyPoints)
	assert.Equal(t, 14*time.Hour+30*time.Minute, st.UntilReset)
}

func TestBadges(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	earned := func() map[string]bool {
		out := map[string]bool{}
		for _, b := range f.svc.Badges() {
			out[b.ID] = b.Earned
		}
		return out
	}
	assert.False(t, earned()["first_task"])

	res := f.svc.AddTask(ctx, "Ship it", 120, HorizonDaily)
	f.svc.CompleteTask(ctx, res.Task.ID, HorizonDaily)
	f.svc.ClaimReward(ctx, 1)

	got := earned()
	assert.True(t, got["first_task"])
	assert.True(t, got["getting_started"])
	assert.True(t, got["first_reward"])
	assert.False(t, got["saver"])
	assert.False(t, got["week_streak"])
}
