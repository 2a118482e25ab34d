package workouts

import (
	"fmt"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/rules"
)

type RulesCmd struct{}

func (c *RulesCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session("")
	if err != nil {
		return err
	}

	engine := s.Scheduler.Engine()
	table := cli.NewTable(ctx.Writer(), "Rule", "Status", "Description")
	for _, r := range rules.Builtin() {
		status := "enabled"
		if !engine.Enabled(r.Name) {
			status = "disabled"
		}
		table.AddRow(r.Name, status, r.Description)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render rules: %w", err)
	}
	return nil
}
