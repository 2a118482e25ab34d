package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dailyworkout/internal/catalog"
	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/constants"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/keyring"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/storage"
	"github.com/julianstephens/dailyworkout/internal/utils"
	"github.com/julianstephens/dailyworkout/internal/validation"
)

type DoctorCmd struct{}

// check is one diagnostic. A failing warn check is reported but not fatal;
// needsStore checks are skipped when storage is unreachable.
type check struct {
	name       string
	run        func(ctx *cli.Context) error
	warn       bool
	needsStore bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsStore: true},
	{name: "Activity catalog", run: checkCatalog},
	{name: "Settings", run: checkSettings, needsStore: true},
	{name: "Weather location", run: checkLocation, needsStore: true, warn: true},
	{name: "OS keyring", run: checkKeyring, warn: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	storeReachable := true

	if err := checkStorageReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		storeReachable = false
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsStore && !storeReachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Get(constants.SettingTimezone); err != nil && !errors.Is(err, prefs.ErrNotFound) {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	v, ok := ctx.Store.(storage.Versioned)
	if !ok {
		// Only the SQL backends carry a schema
		return nil
	}
	current, latest, err := v.SchemaVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, latest is %d; run '%s init'", current, latest, constants.AppName)
	}
	return nil
}

func checkCatalog(ctx *cli.Context) error {
	result := validation.New().ValidateCatalog(catalog.Default().All())
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return validation.New().ValidateSettings(settings)
}

func checkLocation(ctx *cli.Context) error {
	loc, err := prefs.LoadLocation(ctx.Store)
	if errors.Is(err, werrors.ErrNoLocation) {
		return errors.New("no weather location saved, running advisories are off")
	}
	if err != nil {
		return err
	}
	return validation.New().ValidateLocation(loc)
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
