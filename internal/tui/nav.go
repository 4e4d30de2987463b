package tui

type screen int

const (
	screenRituals screen = iota
	screenGoals
	screenHistory
	screenRewards
	screenStats

	screenCount
)

var screenTitles = [screenCount]string{"Rituals", "Goals", "History", "Rewards", "Stats"}

func (s screen) String() string {
	if s < 0 || s >= screenCount {
		return "?"
	}
	return screenTitles[s]
}

// step moves by delta screens, wrapping at both ends.
func step(cur screen, delta int) screen {
	n := int(screenCount)
	return screen(((int(cur)+delta)%n + n) % n)
}

// jump selects the screen at index, or stays put when index is out of range.
func jump(cur screen, index int) screen {
	if index < 0 || index >= int(screenCount) {
		return cur
	}
	return screen(index)
}
