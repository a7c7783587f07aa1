package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"playhist/internal/history"
)

func loadTestDataset(t *testing.T) *history.Dataset {
	t.Helper()
	contents := "ts,platform,ms_played,track_name,artist_name,album_name\n" +
		"2024-01-01T10:00:00,web player,180000,Track 1,Artist A,Album A\n" +
		"2024-01-01T11:00:00,android,60000,Track 2,Artist B,Album B\n"
	path := filepath.Join(t.TempDir(), "spotify_history.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	ds, err := history.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return ds
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func TestNewAppStartsWithFullSelection(t *testing.T) {
	ds := loadTestDataset(t)
	app := NewApp(ds)

	if len(app.view) != ds.Len() {
		t.Errorf("initial view = %d records, want %d", len(app.view), ds.Len())
	}
	if app.res.TotalPlays != 2 {
		t.Errorf("initial total plays = %d, want 2", app.res.TotalPlays)
	}
}

func TestFacetPickerTogglesSelection(t *testing.T) {
	app := NewApp(loadTestDataset(t))
	app = update(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})

	app = update(t, app, key("A"))
	if app.mode != modeFilter {
		t.Fatalf("mode = %v, want filter mode after pressing A", app.mode)
	}

	// Uncheck the first artist (sorted: Artist A).
	app = update(t, app, key(" "))
	if len(app.view) != 1 {
		t.Fatalf("view after unchecking Artist A = %d records, want 1", len(app.view))
	}
	if app.view[0].Artist != "Artist B" {
		t.Errorf("remaining artist = %q, want Artist B", app.view[0].Artist)
	}

	// Check it again.
	app = update(t, app, key(" "))
	if len(app.view) != 2 {
		t.Errorf("view after re-checking = %d records, want 2", len(app.view))
	}
}

func TestFacetPickerSelectNoneMatchesNothing(t *testing.T) {
	app := NewApp(loadTestDataset(t))
	app = update(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})

	app = update(t, app, key("P"))
	app = update(t, app, key("n"))
	if len(app.view) != 0 {
		t.Fatalf("view with empty platform set = %d records, want 0", len(app.view))
	}

	app = update(t, app, key("esc"))
	if app.mode != modeOverview {
		t.Errorf("mode after esc = %v, want overview", app.mode)
	}
	if !strings.Contains(app.View(), "No data matches the current filters.") {
		t.Error("View() should warn when the selection excludes everything")
	}

	app = update(t, app, key("r"))
	if len(app.view) != 2 {
		t.Errorf("view after reset = %d records, want 2", len(app.view))
	}
}

func TestDatasetReloadedResetsSelection(t *testing.T) {
	app := NewApp(loadTestDataset(t))
	app = update(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Narrow the selection, then reload.
	app = update(t, app, key("A"))
	app = update(t, app, key("n"))
	if len(app.view) != 0 {
		t.Fatalf("view = %d records, want 0 before reload", len(app.view))
	}

	fresh := loadTestDataset(t)
	app = update(t, app, DatasetReloaded{Dataset: fresh})
	if app.ds != fresh {
		t.Error("reload should swap in the fresh dataset")
	}
	if len(app.view) != fresh.Len() {
		t.Errorf("view after reload = %d records, want full dataset %d", len(app.view), fresh.Len())
	}
}

func TestOverviewViewShowsMetrics(t *testing.T) {
	app := NewApp(loadTestDataset(t))
	app = update(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := app.View()
	if !strings.Contains(view, "Total listening time: 0.1 h") {
		t.Errorf("overview missing total metric. Got:\n%s", view)
	}
	if !strings.Contains(view, "Artist A") {
		t.Errorf("overview missing top artist. Got:\n%s", view)
	}
}
