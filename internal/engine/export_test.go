package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSnapshotGolden(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	require.True(t, f.svc.ToggleRitual(ctx, "wakeup").Applied)
	report := f.svc.AddTask(ctx, "Write report", 3, HorizonDaily)
	require.True(t, f.svc.AddTask(ctx, "Plan sprint", 5, HorizonWeekly).Applied)
	require.True(t, f.svc.CompleteTask(ctx, report.Task.ID, HorizonDaily).Applied)
	require.True(t, f.svc.AddFinancialBonus(ctx, "saved_income").Applied)
	require.True(t, f.svc.ClaimReward(ctx, 1).Applied)
	require.True(t, f.svc.SetMood(ctx, 7).Applied)

	snap := f.svc.Export(ctx)
	out, err := MarshalSnapshot(snap)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export_snapshot", out)
}

func TestExportAppendsAchievementAfterSnapshot(t *testing.T) {
	f := newFixture(t, wednesday)
	ctx := context.Background()

	snap := f.svc.Export(ctx)
	assert.Empty(t, snap.Achievements)
	assert.NotNil(t, snap.DailyTasks)

	log := f.svc.Achievements(0)
	require.Len(t, log, 1)
	assert.Equal(t, "Data exported", log[0].Text)

	raw, err := f.store.Get(ctx, KeyAchievements)
	require.NoError(t, err)
	var stored []Achievement
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, 1)
}

func TestBackupFileName(t *testing.T) {
	assert.Equal(t, "ritualist-backup-2026-03-04.json", BackupFileName("2026-03-04"))
}
