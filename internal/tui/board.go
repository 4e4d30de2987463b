package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ritualist/internal/engine"
)

// RunBoard opens the interactive board. The reset check runs on start and
// every interval while the board is open.
func RunBoard(ctx context.Context, svc *engine.Service, sched *engine.Scheduler, interval time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, svc, sched, interval)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
