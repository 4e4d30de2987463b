package ui

import (
	"strings"
	"testing"
	"time"
)

func TestSlotTitle(t *testing.T) {
	cases := map[string]string{
		"morning": "Morning",
		"all-day": "All day",
		"weekly":  "Weekly",
		"":        "",
	}
	for in, want := range cases {
		if got := SlotTitle(in); got != want {
			t.Fatalf("SlotTitle(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestProgressBarWidth(t *testing.T) {
	for _, tc := range []struct{ done, total int }{{0, 10}, {5, 10}, {12, 10}, {3, 0}} {
		bar := ProgressBar(tc.done, tc.total, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Fatalf("ProgressBar(%d,%d) has %d cells, want 10", tc.done, tc.total, n)
		}
	}
}

func TestMoodFaceCoversRange(t *testing.T) {
	seen := map[string]bool{}
	for v := 1; v <= 10; v++ {
		seen[MoodFace(v)] = true
	}
	if len(seen) != 5 {
		t.Fatalf("got %d faces, want 5", len(seen))
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{14*time.Hour + 30*time.Minute + 59*time.Second, "14h 30m"},
		{59 * time.Second, "0h 0m"},
		{-time.Minute, "0h 0m"},
		{24 * time.Hour, "24h 0m"},
	}
	for _, tc := range cases {
		if got := Countdown(tc.in); got != tc.want {
			t.Fatalf("Countdown(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
