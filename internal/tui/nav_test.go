package tui

import "testing"

func TestStepWrapsAround(t *testing.T) {
	cases := []struct {
		from  screen
		delta int
		want  screen
	}{
		{screenRituals, 1, screenGoals},
		{screenStats, 1, screenRituals},
		{screenRituals, -1, screenStats},
		{screenHistory, -2, screenRituals},
		{screenRewards, 6, screenStats},
	}
	for _, tc := range cases {
		if got := step(tc.from, tc.delta); got != tc.want {
			t.Fatalf("step(%s, %d)=%s, want %s", tc.from, tc.delta, got, tc.want)
		}
	}
}

func TestJumpIgnoresOutOfRange(t *testing.T) {
	if got := jump(screenGoals, 4); got != screenStats {
		t.Fatalf("jump(4)=%s, want Stats", got)
	}
	if got := jump(screenGoals, 5); got != screenGoals {
		t.Fatalf("jump(5)=%s, want Goals", got)
	}
	if got := jump(screenGoals, -1); got != screenGoals {
		t.Fatalf("jump(-1)=%s, want Goals", got)
	}
}
