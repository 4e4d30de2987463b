package tui

import (
	"fmt"
	"strings"
	"time"

	"ritualist/internal/catalog"
	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func (m boardModel) renderHeader() string {
	st := m.status
	bar := ui.ProgressBar(engine.PointsPerLevel-st.ToNextLevel, engine.PointsPerLevel, 20)
	return fmt.Sprintf("%s  Week %d | Level %d %s | %s %d pts | %s %d",
		ui.Title.Render("Ritualist"), st.Week, st.Level, bar,
		ui.IconBolt, st.Points, ui.MoodFace(st.Mood), st.Mood)
}

func (m boardModel) renderTabs() string {
	tabs := make([]string, 0, screenCount)
	for s := screen(0); s < screenCount; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s)
		if s == m.screen {
			label = ui.ActiveTab.Render(label)
		} else {
			label = ui.Muted.Render(label)
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}

func (m boardModel) cursor(i int) string {
	if i == m.selected {
		return "> "
	}
	return "  "
}

func (m boardModel) renderRituals() string {
	var out []string
	st := m.status
	out = append(out, fmt.Sprintf("Today %d/%d  %s +%d/%d pts  %s",
		st.RitualsDone, st.RitualsTotal,
		ui.ProgressBar(st.PointsToday, st.MaxDailyPoints, 20), st.PointsToday, st.MaxDailyPoints,
		ui.Muted.Render(ui.IconClock+" reset in "+ui.Countdown(st.UntilReset))))

	var slot catalog.Slot
	for i, r := range m.rituals {
		if r.Slot != slot {
			slot = r.Slot
			out = append(out, "", ui.H2.Render(ui.SlotIcon(string(slot))+" "+ui.SlotTitle(string(slot))))
		}
		line := fmt.Sprintf("%s%s %s (+%d)", m.cursor(i), ui.Check(r.Active), r.Name, r.Points)
		if r.Streak > 0 {
			line += fmt.Sprintf(" %s%d", ui.IconFire, r.Streak)
		}
		if i == m.selected {
			line = ui.Gold.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderGoals() string {
	if len(m.tasks) == 0 {
		return ui.Muted.Render("(no pending goals; add one with `rt task add`)")
	}
	var out []string
	var horizon engine.Horizon
	for i, t := range m.tasks {
		if t.Horizon != horizon {
			horizon = t.Horizon
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, ui.H2.Render(ui.KindIcon(string(horizon))+" "+ui.SlotTitle(string(horizon))))
		}
		line := fmt.Sprintf("%s%s (+%d) %s", m.cursor(i), t.Text, t.Priority, ui.Muted.Render(engine.ShortID(t.ID)))
		if i == m.selected {
			line = ui.Gold.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderHistory() string {
	if len(m.dates) == 0 {
		return ui.Muted.Render("(nothing completed yet)")
	}
	dates := m.dates
	if len(dates) > 7 {
		dates = dates[:7]
	}
	var out []string
	for _, d := range dates {
		entries := m.svc.History(d)
		total := 0
		for _, e := range entries {
			total += e.Points
		}
		out = append(out, ui.H2.Render(fmt.Sprintf("%s  +%d", d, total)))
		for _, e := range entries {
			out = append(out, fmt.Sprintf("  %s %s +%d %s", ui.KindIcon(string(e.Kind)), e.Text, e.Points,
				ui.Muted.Render(e.CompletedAt.In(m.svc.Location()).Format("15:04"))))
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderRewards() string {
	out := []string{fmt.Sprintf("Balance: %d pts", m.status.Points), ""}
	for i, r := range m.rewards {
		state := ui.Good.Render("available")
		switch {
		case r.Claimed && r.AvailableAt != nil:
			state = ui.Muted.Render(fmt.Sprintf("%s until %s", ui.IconLock, r.AvailableAt.In(m.svc.Location()).Format("Jan 2 15:04")))
		case r.Cost > m.status.Points:
			state = ui.Warn.Render(fmt.Sprintf("need %d more", r.Cost-m.status.Points))
		}
		line := fmt.Sprintf("%s%s %s (%d pts, every %dd) %s", m.cursor(i), ui.IconGift, r.Name, r.Cost, r.ResetDays, state)
		if i == m.selected {
			line = ui.Gold.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderStats() string {
	st := m.status
	out := []string{
		ui.LabelValue("Level", st.Level),
		ui.LabelValue("Total earned", st.TotalEarned),
		ui.LabelValue("Next level in", fmt.Sprintf("%d pts", st.ToNextLevel)),
		ui.LabelValue("Pending goals", st.PendingTasks),
		"",
		ui.H2.Render(ui.IconFire + " Streaks"),
	}
	if len(m.streaks) == 0 {
		out = append(out, ui.Muted.Render("  (none yet)"))
	}
	for _, s := range m.streaks {
		out = append(out, fmt.Sprintf("  %s: %d days", s.Name, s.Count))
	}

	out = append(out, "", ui.H2.Render(ui.IconTrophy+" Achievements"))
	if len(m.achievements) == 0 {
		out = append(out, ui.Muted.Render("  (none yet)"))
	}
	for _, a := range m.achievements {
		out = append(out, fmt.Sprintf("  %s %s", a.Text, ui.Muted.Render(a.Time.In(m.svc.Location()).Format(time.DateTime))))
	}

	earned := 0
	var icons []string
	for _, b := range m.badges {
		if b.Earned {
			earned++
			icons = append(icons, b.Icon)
		}
	}
	out = append(out, "", ui.H2.Render(fmt.Sprintf("Badges %d/%d", earned, len(m.badges))))
	if len(icons) > 0 {
		out = append(out, "  "+strings.Join(icons, " "))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render("←/→ screens · 1-5 jump · ↑/↓ move · space act · r refresh · q quit")
	return keys + "\n" + m.lastLog
}
