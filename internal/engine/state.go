package engine

import (
	"fmt"
	"strings"
	"time"

	"ritualist/internal/catalog"
)

type Horizon string

const (
	HorizonDaily   Horizon = "daily"
	HorizonWeekly  Horizon = "weekly"
	HorizonMonthly Horizon = "monthly"
)

// Horizons lists task horizons in display order.
var Horizons = []Horizon{HorizonDaily, HorizonWeekly, HorizonMonthly}

func (h Horizon) IsValid() bool {
	switch h {
	case HorizonDaily, HorizonWeekly, HorizonMonthly:
		return true
	default:
		return false
	}
}

func ParseHorizon(input string) (Horizon, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	h := Horizon(s)
	if !h.IsValid() {
		return "", fmt.Errorf("invalid horizon: %q", input)
	}
	return h, nil
}

type HistoryKind string

const (
	KindHabit   HistoryKind = "habit"
	KindDaily   HistoryKind = "daily"
	KindWeekly  HistoryKind = "weekly"
	KindMonthly HistoryKind = "monthly"
	KindBonus   HistoryKind = "bonus"
)

type Progression struct {
	Points      int `json:"points"`
	TotalEarned int `json:"totalPointsEverEarned"`
	Level       int `json:"level"`
	Week        int `json:"week"`
}

type StreakRecord struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastCompletionDate,omitempty"`
}

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Priority  int       `json:"priority"`
	Horizon   Horizon   `json:"horizon"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryEntry struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Kind        HistoryKind `json:"kind"`
	Points      int         `json:"points"`
	CompletedAt time.Time   `json:"completedAtTime"`

	// CreatedAt is set for task entries so a restore keeps the task's place.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type Reward struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Cost      int        `json:"cost"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimedAtTimestamp"`
	ResetDays int        `json:"resetIntervalDays"`
}

type Achievement struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Time time.Time `json:"timestamp"`
}

// State is the whole mutable model. It is owned by Service and only touched
// with Service.mu held.
type State struct {
	Progression   Progression
	Rituals       map[string]bool
	Streaks       map[string]StreakRecord
	Tasks         map[Horizon][]Task
	History       map[string][]HistoryEntry
	Rewards       []Reward
	Achievements  []Achievement
	LastResetDate string
	Mood          int
}

const (
	MoodMin     = 1
	MoodMax     = 10
	DefaultMood = 5
)

func defaultProgression() Progression {
	return Progression{Level: 1, Week: 1}
}

func defaultRituals(cat *catalog.Catalog) map[string]bool {
	out := make(map[string]bool, len(cat.Rituals))
	for _, r := range cat.Rituals {
		out[r.Key] = false
	}
	return out
}

func seedRewards(cat *catalog.Catalog) []Reward {
	out := make([]Reward, 0, len(cat.Rewards))
	for _, r := range cat.Rewards {
		out = append(out, Reward{ID: r.ID, Name: r.Name, Cost: r.Cost, ResetDays: r.ResetDays})
	}
	return out
}

func newState(cat *catalog.Catalog, today string) *State {
	return &State{
		Progression:   defaultProgression(),
		Rituals:       defaultRituals(cat),
		Streaks:       map[string]StreakRecord{},
		Tasks:         map[Horizon][]Task{HorizonDaily: {}, HorizonWeekly: {}, HorizonMonthly: {}},
		History:       map[string][]HistoryEntry{},
		Rewards:       seedRewards(cat),
		Achievements:  []Achievement{},
		LastResetDate: today,
		Mood:          DefaultMood,
	}
}

// normalizeRituals makes the key set exactly the catalog keys, keeping
// stored flags for keys that still exist.
func normalizeRituals(stored map[string]bool, cat *catalog.Catalog) map[string]bool {
	out := defaultRituals(cat)
	for k := range out {
		out[k] = stored[k]
	}
	return out
}
