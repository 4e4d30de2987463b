package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Ritualist theme (CLI + TUI).

const (
	IconSun      = "🌅"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTodo     = "⬜"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconFire     = "🔥"
	IconGift     = "🎁"
	IconLock     = "🔒"
	IconMoney    = "💰"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconLoop     = "🔁"
	IconScroll   = "📜"
	IconCalendar = "📅"
	IconClock    = "⏳"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func Check(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

func SlotIcon(slot string) string {
	switch slot {
	case "morning":
		return "🌅"
	case "all-day":
		return "☀️"
	case "flexible":
		return "🔄"
	case "evening":
		return "🌆"
	case "night":
		return "🌙"
	case "weekend":
		return "🏖️"
	default:
		return "•"
	}
}

func SlotTitle(slot string) string {
	switch slot {
	case "all-day":
		return "All day"
	case "":
		return ""
	default:
		return strings.ToUpper(slot[:1]) + slot[1:]
	}
}

// KindIcon covers both task horizons and history entry kinds.
func KindIcon(kind string) string {
	switch kind {
	case "habit":
		return IconLoop
	case "daily":
		return IconSun
	case "weekly":
		return IconCalendar
	case "monthly":
		return IconScroll
	case "bonus":
		return IconMoney
	default:
		return "•"
	}
}

// ProgressBar renders done/total as a fixed-width bar.
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Countdown renders d as hours and minutes, e.g. "14h 30m".
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// MoodFace maps a 1..10 mood to an emoji.
func MoodFace(mood int) string {
	switch {
	case mood <= 2:
		return "😞"
	case mood <= 4:
		return "😕"
	case mood <= 6:
		return "😐"
	case mood <= 8:
		return "🙂"
	default:
		return "😄"
	}
}
