package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAward(3)
		m.RecordRefund(1)
		m.RecordClaim(10)
		m.RecordToggle(true)
		m.RecordTaskCompleted("daily")
		m.RecordReset("day")
		m.SetProgress(2, 40)
	})
}

func TestRecorders(t *testing.T) {
	m := New()
	m.RecordAward(3)
	m.RecordAward(4)
	m.RecordClaim(10)
	m.RecordToggle(true)
	m.RecordToggle(false)
	m.RecordToggle(true)
	m.RecordTaskCompleted("weekly")
	m.RecordReset("week")
	m.SetProgress(2, 40)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.PointsAwarded))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.PointsSpent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RewardsClaimed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RitualToggles.WithLabelValues("on")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RitualToggles.WithLabelValues("off")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksCompleted.WithLabelValues("weekly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resets.WithLabelValues("week")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Level))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.Balance))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.RecordAward(5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ritualist_points_awarded_total 5"))
}
