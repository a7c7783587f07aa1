package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Facet identifies one of the three filterable record fields.
type Facet int

const (
	FacetArtists Facet = iota
	FacetAlbums
	FacetPlatforms
)

func (f Facet) String() string {
	switch f {
	case FacetArtists:
		return "Artists"
	case FacetAlbums:
		return "Albums"
	case FacetPlatforms:
		return "Platforms"
	}
	return "Unknown"
}

// facetItem implements list.Item for one selectable facet value.
type facetItem struct {
	value   string
	checked bool
}

func (i facetItem) Title() string {
	checkbox := "[ ]"
	if i.checked {
		checkbox = "[x]"
	}
	return fmt.Sprintf("%s %s", checkbox, i.value)
}

func (i facetItem) Description() string { return "" }
func (i facetItem) FilterValue() string { return i.value }

// facetPicker is the multi-select pane for one facet of the selection.
type facetPicker struct {
	facet Facet
	list  list.Model
}

func newFacetPicker(facet Facet, values []string, selected map[string]bool, width, height int) facetPicker {
	items := make([]list.Item, len(values))
	for i, v := range values {
		items[i] = facetItem{value: v, checked: selected[v]}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, width, height)
	l.Title = facet.String()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	return facetPicker{facet: facet, list: l}
}

// update handles picker keys. It returns the value whose membership was
// toggled ("" if none) and whether select-all/select-none changed everything.
func (p *facetPicker) update(msg tea.Msg) (toggled string, bulk bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case " ":
			item, ok := p.list.SelectedItem().(facetItem)
			if !ok {
				return "", false, nil
			}
			item.checked = !item.checked
			cmd = p.list.SetItem(p.list.Index(), item)
			return item.value, false, cmd

		case "a":
			p.setAll(true)
			return "", true, nil

		case "n":
			p.setAll(false)
			return "", true, nil
		}
	}

	p.list, cmd = p.list.Update(msg)
	return "", false, cmd
}

func (p *facetPicker) setAll(checked bool) {
	items := p.list.Items()
	for i, it := range items {
		item := it.(facetItem)
		item.checked = checked
		items[i] = item
	}
	p.list.SetItems(items)
}

// values returns the currently checked values as a membership set.
func (p *facetPicker) values() map[string]bool {
	set := make(map[string]bool)
	for _, it := range p.list.Items() {
		item := it.(facetItem)
		if item.checked {
			set[item.value] = true
		}
	}
	return set
}

func (p *facetPicker) setSize(width, height int) {
	p.list.SetSize(width, height)
}

func (p *facetPicker) view() string {
	return p.list.View()
}
