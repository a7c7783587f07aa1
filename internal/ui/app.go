package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"playhist/internal/analysis"
	"playhist/internal/history"
)

type mode int

const (
	modeOverview mode = iota
	modeHourly
	modeDurations
	modePlatforms
	modeFilter
)

// App is the root Bubble Tea model for the dashboard. It holds the loaded
// dataset and the active selection; every selection change triggers one
// synchronous re-filter and re-aggregate.
type App struct {
	ds   *history.Dataset
	sel  history.Selection
	view []history.Record
	res  analysis.Result

	mode   mode
	picker facetPicker

	width  int
	height int
	ready  bool
}

func NewApp(ds *history.Dataset) App {
	a := App{
		ds:  ds,
		sel: history.FullSelection(ds),
	}
	a.recompute()
	return a
}

// recompute derives the filtered view and its aggregates from the current
// dataset and selection.
func (a *App) recompute() {
	a.view = history.Filter(a.ds, a.sel)
	a.res = analysis.Aggregate(a.view)
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if a.mode == modeFilter {
			a.picker.setSize(a.width, a.pickerHeight())
		}
		return a, nil

	case DatasetReloaded:
		// A fresh load resets the selection to everything, like the
		// initial load does.
		a.ds = msg.Dataset
		a.sel = history.FullSelection(a.ds)
		a.recompute()
		if a.mode == modeFilter {
			a.openPicker(a.picker.facet)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.mode == modeFilter {
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc", "enter":
			a.mode = modeOverview
			return a, nil
		default:
			toggled, bulk, cmd := a.picker.update(msg)
			if toggled != "" || bulk {
				a.applyPicker()
			}
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.mode = modeOverview
	case "2":
		a.mode = modeHourly
	case "3":
		a.mode = modeDurations
	case "4":
		a.mode = modePlatforms
	case "A":
		a.openPicker(FacetArtists)
	case "B":
		a.openPicker(FacetAlbums)
	case "P":
		a.openPicker(FacetPlatforms)
	case "r":
		// Reset all filters.
		a.sel = history.FullSelection(a.ds)
		a.recompute()
	}
	return a, nil
}

func (a *App) openPicker(facet Facet) {
	var values []string
	var selected map[string]bool
	switch facet {
	case FacetArtists:
		values, selected = a.ds.Artists(), a.sel.Artists
	case FacetAlbums:
		values, selected = a.ds.Albums(), a.sel.Albums
	case FacetPlatforms:
		values, selected = a.ds.Platforms(), a.sel.Platforms
	}
	a.picker = newFacetPicker(facet, values, selected, a.width, a.pickerHeight())
	a.mode = modeFilter
}

// applyPicker copies the picker's checked values into the selection and
// recomputes the derived views.
func (a *App) applyPicker() {
	set := a.picker.values()
	switch a.picker.facet {
	case FacetArtists:
		a.sel.Artists = set
	case FacetAlbums:
		a.sel.Albums = set
	case FacetPlatforms:
		a.sel.Platforms = set
	}
	a.recompute()
}

func (a App) pickerHeight() int {
	if a.height > 4 {
		return a.height - 4
	}
	return 10
}
