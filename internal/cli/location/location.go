package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dailyworkout/internal/cli"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

type LocationSetCmd struct {
	Name string `arg:"" optional:"" help:"City or place name. Prompts when omitted."`
}

func (c *LocationSetCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		var err error
		name, err = prompt()
		if err != nil {
			return err
		}
	}

	loc, err := ctx.Provider().Geocode(context.Background(), name)
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return fmt.Errorf("could not find %q, try another name or be more specific", name)
		}
		return fmt.Errorf("failed to look up location: %w", err)
	}

	if err := prefs.SaveLocation(ctx.Store, loc); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	ctx.Cache().Purge()
	logger.Info("location saved", "name", loc.Name, "lat", loc.Latitude, "lon", loc.Longitude)

	display := loc.DisplayName
	if display == "" {
		display = loc.Name
	}
	if loc.Country != "" {
		display += ", " + loc.Country
	}
	ctx.Printf("Location set to %s\n", display)
	return nil
}

func prompt() (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weather location").
				Description("City name used for running forecasts").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter a city name")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

type LocationShowCmd struct{}

func (c *LocationShowCmd) Run(ctx *cli.Context) error {
	loc, err := prefs.LoadLocation(ctx.Store)
	if errors.Is(err, werrors.ErrNoLocation) {
		ctx.Println(cli.SetupNotice)
		return nil
	}
	if err != nil {
		return err
	}

	ctx.Printf("Location:  %s\n", loc.Name)
	ctx.Printf("Latitude:  %.4f\n", loc.Latitude)
	ctx.Printf("Longitude: %.4f\n", loc.Longitude)
	return nil
}

type LocationClearCmd struct{}

func (c *LocationClearCmd) Run(ctx *cli.Context) error {
	if err := prefs.ClearLocation(ctx.Store); err != nil {
		return fmt.Errorf("failed to clear location: %w", err)
	}
	ctx.Cache().Purge()
	ctx.Println("Weather location cleared.")
	return nil
}
