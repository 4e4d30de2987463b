package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ritualist/internal/catalog"
	"ritualist/internal/engine"
)

type boardModel struct {
	ctx      context.Context
	svc      *engine.Service
	sched    *engine.Scheduler
	interval time.Duration

	width  int
	height int

	screen   screen
	selected int

	status       engine.Status
	rituals      []engine.RitualView
	tasks        []engine.Task
	dates        []string
	rewards      []engine.RewardView
	streaks      []engine.Streak
	achievements []engine.Achievement
	badges       []engine.Badge

	lastLog string
}

type tickMsg time.Time

type resultMsg struct {
	text string
}

func newBoardModel(ctx context.Context, svc *engine.Service, sched *engine.Scheduler, interval time.Duration) boardModel {
	if interval <= 0 {
		interval = engine.DefaultPollInterval
	}
	m := boardModel{
		ctx:      ctx,
		svc:      svc,
		sched:    sched,
		interval: interval,
		lastLog:  "Loaded.",
	}
	m.reload()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.checkCmd(), m.tickCmd())
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) checkCmd() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	return func() tea.Msg {
		res := m.sched.Tick(m.ctx)
		switch {
		case res.Applied:
			return resultMsg{text: fmt.Sprintf("New %s: %s", res.Kind, res.To)}
		case res.RewardsUnlocked > 0:
			return resultMsg{text: fmt.Sprintf("%d reward(s) available again", res.RewardsUnlocked)}
		default:
			return nil
		}
	}
}

// reload copies the read models the views need.
func (m *boardModel) reload() {
	m.status = m.svc.Status()
	m.rituals = m.svc.Rituals()
	slices.SortStableFunc(m.rituals, func(a, b engine.RitualView) int {
		return slices.Index(catalog.Slots, a.Slot) - slices.Index(catalog.Slots, b.Slot)
	})
	m.tasks = nil
	for _, h := range engine.Horizons {
		m.tasks = append(m.tasks, m.svc.Tasks(h)...)
	}
	m.dates = m.svc.HistoryDates()
	m.rewards = m.svc.Rewards()
	m.streaks = m.svc.TopStreaks(5)
	m.achievements = m.svc.Achievements(6)
	m.badges = m.svc.Badges()
	m.clampSelection()
}

func (m boardModel) rows() int {
	switch m.screen {
	case screenRituals:
		return len(m.rituals)
	case screenGoals:
		return len(m.tasks)
	case screenRewards:
		return len(m.rewards)
	default:
		return 0
	}
}

func (m *boardModel) clampSelection() {
	n := m.rows()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *boardModel) show(s screen) {
	if s != m.screen {
		m.screen = s
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.checkCmd(), m.tickCmd())
	case resultMsg:
		m.lastLog = msg.text
		m.reload()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right", "l", "tab":
		m.show(step(m.screen, 1))
		return m, nil
	case "left", "h", "shift+tab":
		m.show(step(m.screen, -1))
		return m, nil
	case "1", "2", "3", "4", "5":
		m.show(jump(m.screen, int(key[0]-'1')))
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.rows()-1 {
			m.selected++
		}
		return m, nil
	case "r":
		m.reload()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case "enter", " ", "c":
		return m, m.actCmd()
	}
	return m, nil
}

// actCmd applies the action for the selected row of the current screen.
func (m boardModel) actCmd() tea.Cmd {
	i := m.selected
	switch m.screen {
	case screenRituals:
		if i >= len(m.rituals) {
			return nil
		}
		key := m.rituals[i].Key
		return func() tea.Msg {
			res := m.svc.ToggleRitual(m.ctx, key)
			if !res.Applied {
				return resultMsg{text: res.Reason.String()}
			}
			if res.Active {
				return resultMsg{text: fmt.Sprintf("%s +%d", m.rituals[i].Name, res.Points)}
			}
			return resultMsg{text: fmt.Sprintf("%s -%d", m.rituals[i].Name, res.Points)}
		}
	case screenGoals:
		if i >= len(m.tasks) {
			return nil
		}
		t := m.tasks[i]
		return func() tea.Msg {
			res := m.svc.CompleteTask(m.ctx, t.ID, t.Horizon)
			if !res.Applied {
				return resultMsg{text: res.Reason.String()}
			}
			return resultMsg{text: fmt.Sprintf("Done: %s +%d", t.Text, t.Priority)}
		}
	case screenRewards:
		if i >= len(m.rewards) {
			return nil
		}
		id := m.rewards[i].ID
		return func() tea.Msg {
			res := m.svc.ClaimReward(m.ctx, id)
			if !res.Applied {
				return resultMsg{text: res.Reason.String()}
			}
			return resultMsg{text: fmt.Sprintf("Enjoy: %s (-%d)", res.Reward.Name, res.Reward.Cost)}
		}
	}
	return nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.screen {
	case screenRituals:
		b.WriteString(m.renderRituals())
	case screenGoals:
		b.WriteString(m.renderGoals())
	case screenHistory:
		b.WriteString(m.renderHistory())
	case screenRewards:
		b.WriteString(m.renderRewards())
	case screenStats:
		b.WriteString(m.renderStats())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
