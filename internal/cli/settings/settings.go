package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/rules"
)

type SettingsCmd struct {
	List  bool `help:"List current settings."`
	Reset bool `help:"Restore the default settings."`

	Timezone    *string  `help:"IANA timezone used to resolve 'today' (or 'Local')."`
	PreviewDays *int     `help:"Number of upcoming days in the weekly preview (1-13)."`
	DisableRule []string `help:"Turn off an adjacency rule by name." placeholder:"RULE"`
	EnableRule  []string `help:"Turn an adjacency rule back on." placeholder:"RULE"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		disabled := "none"
		if len(settings.DisabledRules) > 0 {
			disabled = strings.Join(settings.DisabledRules, ", ")
		}
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:       %s\n", settings.Timezone)
		ctx.Printf("  Preview Days:   %d\n", settings.PreviewDays)
		ctx.Printf("  Disabled Rules: %s\n", disabled)
		return nil
	}

	if c.Reset {
		if err := prefs.SaveSettings(ctx.Store, models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		ctx.Println("Settings reset to defaults.")
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.PreviewDays != nil {
		settings.PreviewDays = *c.PreviewDays
		updated = true
	}
	for _, name := range c.DisableRule {
		if !slices.Contains(rules.Names(), name) {
			return fmt.Errorf("%w: %s (known: %s)", rules.ErrUnknownRule, name, strings.Join(rules.Names(), ", "))
		}
		if !slices.Contains(settings.DisabledRules, name) {
			settings.DisabledRules = append(settings.DisabledRules, name)
		}
		updated = true
	}
	for _, name := range c.EnableRule {
		settings.DisabledRules = slices.DeleteFunc(settings.DisabledRules, func(s string) bool { return s == name })
		updated = true
	}

	if updated {
		if err := prefs.SaveSettings(ctx.Store, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
