package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitheroapp/habithero/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Service)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
