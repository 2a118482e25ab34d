package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/tui"
)

type TuiCmd struct {
	Date string `arg:"" optional:"" help:"Start on this date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session(c.Date)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Config{
		Store:     ctx.Store,
		Scheduler: s.Scheduler,
		Settings:  s.Settings,
		Anchor:    s.Anchor,
		Weather:   ctx.Provider(),
		Forecasts: ctx.Cache(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
