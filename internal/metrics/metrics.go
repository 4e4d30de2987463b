// Package metrics exposes Prometheus counters for the progression engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	PointsAwarded  prometheus.Counter
	PointsRefunded prometheus.Counter
	PointsSpent    prometheus.Counter
	RitualToggles  *prometheus.CounterVec
	TasksCompleted *prometheus.CounterVec
	RewardsClaimed prometheus.Counter
	Resets         *prometheus.CounterVec
	Level          prometheus.Gauge
	Balance        prometheus.Gauge

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		PointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ritualist_points_awarded_total",
			Help: "Points added to the balance and the lifetime total.",
		}),
		PointsRefunded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ritualist_points_refunded_total",
			Help: "Points clawed back by undoing a ritual or task.",
		}),
		PointsSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ritualist_points_spent_total",
			Help: "Points spent on rewards.",
		}),
		RitualToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ritualist_ritual_toggles_total",
			Help: "Ritual toggles by resulting state.",
		}, []string{"state"}),
		TasksCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ritualist_tasks_completed_total",
			Help: "Completed tasks by horizon.",
		}, []string{"horizon"}),
		RewardsClaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ritualist_rewards_claimed_total",
			Help: "Rewards claimed.",
		}),
		Resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ritualist_resets_total",
			Help: "Calendar boundary resets by kind (day|week).",
		}, []string{"kind"}),
		Level: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ritualist_level",
			Help: "Current level.",
		}),
		Balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ritualist_points_balance",
			Help: "Current spendable points.",
		}),
		registry: reg,
	}

	reg.MustRegister(
		m.PointsAwarded,
		m.PointsRefunded,
		m.PointsSpent,
		m.RitualToggles,
		m.TasksCompleted,
		m.RewardsClaimed,
		m.Resets,
		m.Level,
		m.Balance,
	)
	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordAward(n int) {
	if m == nil {
		return
	}
	m.PointsAwarded.Add(float64(n))
}

func (m *Metrics) RecordRefund(n int) {
	if m == nil {
		return
	}
	m.PointsRefunded.Add(float64(n))
}

func (m *Metrics) RecordClaim(cost int) {
	if m == nil {
		return
	}
	m.PointsSpent.Add(float64(cost))
	m.RewardsClaimed.Inc()
}

func (m *Metrics) RecordToggle(active bool) {
	if m == nil {
		return
	}
	state := "off"
	if active {
		state = "on"
	}
	m.RitualToggles.WithLabelValues(state).Inc()
}

func (m *Metrics) RecordTaskCompleted(horizon string) {
	if m == nil {
		return
	}
	m.TasksCompleted.WithLabelValues(horizon).Inc()
}

func (m *Metrics) RecordReset(kind string) {
	if m == nil {
		return
	}
	m.Resets.WithLabelValues(kind).Inc()
}

// SetProgress updates the level and balance gauges.
func (m *Metrics) SetProgress(level, points int) {
	if m == nil {
		return
	}
	m.Level.Set(float64(level))
	m.Balance.Set(float64(points))
}
