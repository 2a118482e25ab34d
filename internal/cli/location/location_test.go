package location

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/dailyworkout/internal/cli"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/storage/sqlite"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

type stubGeocoder struct {
	places map[string]models.Location
	calls  int
}

func (s *stubGeocoder) Geocode(ctx context.Context, name string) (models.Location, error) {
	loc, ok := s.places[name]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, name)
	}
	return loc, nil
}

func (s *stubGeocoder) Forecast(ctx context.Context, lat, lon float64) (models.Forecast, error) {
	s.calls++
	return models.Forecast{}, nil
}

func setupTestDB(t *testing.T) (*cli.Context, *stubGeocoder, *bytes.Buffer) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	stub := &stubGeocoder{places: map[string]models.Location{
		"Portland": {
			Name:        "Portland",
			Latitude:    45.52,
			Longitude:   -122.68,
			DisplayName: "Portland",
			Country:     "United States",
		},
	}}
	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Weather: stub, Out: out}, stub, out
}

func TestLocationSetCmd(t *testing.T) {
	ctx, _, out := setupTestDB(t)

	cmd := &LocationSetCmd{Name: "  Portland "}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("location set failed: %v", err)
	}
	if !strings.Contains(out.String(), "Location set to Portland, United States") {
		t.Errorf("unexpected output: %q", out.String())
	}

	loc, err := prefs.LoadLocation(ctx.Store)
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	if loc.Name != "Portland" || loc.Latitude != 45.52 || loc.Longitude != -122.68 {
		t.Errorf("saved location = %+v", loc)
	}
}

func TestLocationSetCmd_NotFound(t *testing.T) {
	ctx, _, _ := setupTestDB(t)

	cmd := &LocationSetCmd{Name: "Atlantis"}
	err := cmd.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "could not find") {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if _, err := prefs.LoadLocation(ctx.Store); !errors.Is(err, werrors.ErrNoLocation) {
		t.Errorf("location saved after failed lookup: %v", err)
	}
}

func TestLocationSetCmd_PurgesCache(t *testing.T) {
	ctx, stub, _ := setupTestDB(t)

	loc := models.Location{Name: "Old", Latitude: 10, Longitude: 10}
	if _, err := ctx.Cache().Get(context.Background(), loc); err != nil {
		t.Fatalf("cache get failed: %v", err)
	}
	if ctx.Cache().Len() != 1 {
		t.Fatalf("cache len = %d, want 1", ctx.Cache().Len())
	}

	cmd := &LocationSetCmd{Name: "Portland"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("location set failed: %v", err)
	}
	if ctx.Cache().Len() != 0 {
		t.Errorf("cache not purged, len = %d", ctx.Cache().Len())
	}
	if stub.calls != 1 {
		t.Errorf("forecast calls = %d, want 1", stub.calls)
	}
}

func TestLocationShowAndClear(t *testing.T) {
	ctx, _, out := setupTestDB(t)

	show := &LocationShowCmd{}
	if err := show.Run(ctx); err != nil {
		t.Fatalf("location show failed: %v", err)
	}
	if !strings.Contains(out.String(), cli.SetupNotice) {
		t.Errorf("expected setup notice, got %q", out.String())
	}

	if err := (&LocationSetCmd{Name: "Portland"}).Run(ctx); err != nil {
		t.Fatalf("location set failed: %v", err)
	}

	out.Reset()
	if err := show.Run(ctx); err != nil {
		t.Fatalf("location show failed: %v", err)
	}
	for _, want := range []string{"Portland", "45.5200", "-122.6800"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}

	if err := (&LocationClearCmd{}).Run(ctx); err != nil {
		t.Fatalf("location clear failed: %v", err)
	}
	if _, err := prefs.LoadLocation(ctx.Store); !errors.Is(err, werrors.ErrNoLocation) {
		t.Errorf("location still saved after clear: %v", err)
	}
}
