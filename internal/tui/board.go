package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
)

// RunBoard runs the dashboard TUI until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, messenger *gnome.Messenger, out io.Writer) error {
	m := newDashboardModel(ctx, svc, messenger)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
