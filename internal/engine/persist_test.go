package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ritualist/internal/catalog"
	"ritualist/internal/storage"
)

func TestFreshStoreSeedsDefaults(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	assert.Equal(t, 1, f.store.Writes())
	raw, err := f.store.Get(ctx, KeyLastResetDate)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-04"`, string(raw))

	raw, err = f.store.Get(ctx, KeyRewards)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Good coffee")

	p := f.svc.Progression()
	assert.Equal(t, Progression{Level: 1, Week: 1}, p)
	assert.Equal(t, DefaultMood, f.svc.Mood())
}

func TestCorruptValuesFallBackToDefaults(t *testing.T) {
	store := storage.NewMemoryKV()
	for _, key := range []string{KeyProgression, KeyRituals, KeyStreaks, KeyTasksDaily, KeyHistory, KeyRewards, KeyAchievements, KeyMood} {
		store.Put(key, []byte("{not json"))
	}
	f := newFixtureWith(t, wednesday, store, catalog.Default())

	assert.Equal(t, Progression{Level: 1, Week: 1}, f.svc.Progression())
	assert.Len(t, f.svc.Rituals(), 20)
	assert.Empty(t, f.svc.Tasks(HorizonDaily))
	assert.Empty(t, f.svc.HistoryDates())
	assert.Len(t, f.svc.Rewards(), 6)
	assert.Empty(t, f.svc.Achievements(0))
	assert.Equal(t, DefaultMood, f.svc.Mood())
}

func TestLoadNormalizesStoredState(t *testing.T) {
	store := storage.NewMemoryKV()
	store.Put(KeyProgression, []byte(`{"points":-4,"totalPointsEverEarned":250,"level":9,"week":0}`))
	store.Put(KeyRituals, []byte(`{"sport":true,"retired_ritual":true}`))
	store.Put(KeyRewards, []byte(`[{"id":1,"name":"Good coffee","cost":10,"claimed":true,"claimedAtTimestamp":null,"resetIntervalDays":1}]`))
	store.Put(KeyMood, []byte(`42`))
	store.Put(KeyLastResetDate, []byte(`"2026-03-01"`))

	f := newFixtureWith(t, wednesday, store, catalog.Default())

	p := f.svc.Progression()
	assert.Equal(t, 0, p.Points)
	assert.Equal(t, 3, p.Level, "level is derived from the total")
	assert.Equal(t, 1, p.Week)

	active := map[string]bool{}
	for _, r := range f.svc.Rituals() {
		active[r.Key] = r.Active
	}
	assert.Len(t, active, 20)
	assert.True(t, active["sport"])
	_, kept := active["retired_ritual"]
	assert.False(t, kept)

	rewards := f.svc.Rewards()
	require.Len(t, rewards, 1)
	require.NotNil(t, rewards[0].ClaimedAt)
	assert.Equal(t, wednesday, *rewards[0].ClaimedAt)

	assert.Equal(t, DefaultMood, f.svc.Mood())
	assert.Equal(t, "2026-03-01", f.svc.Status().LastResetDate)
	assert.Equal(t, 0, f.store.Writes(), "nothing to seed")
}

func TestEachOperationWritesOneBatch(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()
	before := f.store.Writes()

	f.svc.ToggleRitual(ctx, "planning")
	assert.Equal(t, before+1, f.store.Writes())

	f.svc.AddTask(ctx, "", 1, HorizonDaily)
	assert.Equal(t, before+1, f.store.Writes(), "rejections are not persisted")

	f.svc.AddTask(ctx, "Dishes", 1, HorizonDaily)
	assert.Equal(t, before+2, f.store.Writes())
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()
	f.store.SetErr = errors.New("disk full")

	res := f.svc.ToggleRitual(ctx, "sport")
	require.True(t, res.Applied)
	assert.Equal(t, 4, f.svc.Progression().Points)

	raw, err := f.store.Get(ctx, KeyProgression)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "ritualist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewKVRepo(db)

	clock := NewFakeClock(wednesday)
	opts := []Option{WithClock(clock), WithLocation(wednesday.Location())}

	first := NewService(ctx, repo, nil, opts...)
	first.ToggleRitual(ctx, "sport")
	added := first.AddTask(ctx, "Renew passport", 8, HorizonMonthly)
	require.True(t, added.Applied)
	first.AddFinancialBonus(ctx, "invested")
	first.ClaimReward(ctx, 1)
	first.SetMood(ctx, 9)

	second := NewService(ctx, repo, nil, opts...)
	assert.Equal(t, first.Progression(), second.Progression())
	assert.Equal(t, first.Rituals(), second.Rituals())
	assert.Equal(t, 1, second.Streak("sport").Count)
	require.Len(t, second.Tasks(HorizonMonthly), 1)
	assert.Equal(t, added.Task.ID, second.Tasks(HorizonMonthly)[0].ID)
	assert.Equal(t, first.History("2026-03-04"), second.History("2026-03-04"))
	assert.True(t, second.Rewards()[0].Claimed)
	assert.Equal(t, 9, second.Mood())
	assert.Len(t, second.Achievements(0), 2)
}
