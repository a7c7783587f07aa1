package history

// Selection is the active filter state: the allowed values for each facet.
// A record must match all three facets to pass. An empty facet set lets
// nothing through - callers wanting "no filter" use FullSelection.
type Selection struct {
	Artists   map[string]bool
	Albums    map[string]bool
	Platforms map[string]bool
}

// NewSet builds a membership set from a list of values.
func NewSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// FullSelection selects every distinct value present in the dataset. This is
// the default after a fresh load.
func FullSelection(ds *Dataset) Selection {
	return Selection{
		Artists:   NewSet(ds.Artists()),
		Albums:    NewSet(ds.Albums()),
		Platforms: NewSet(ds.Platforms()),
	}
}

// Matches reports whether the record passes every facet of the selection.
func (s Selection) Matches(r Record) bool {
	return s.Artists[r.Artist] && s.Albums[r.Album] && s.Platforms[r.Platform]
}

// Filter returns the records of the dataset that pass the selection,
// preserving dataset order.
func Filter(ds *Dataset, sel Selection) []Record {
	var view []Record
	for _, r := range ds.Records() {
		if sel.Matches(r) {
			view = append(view, r)
		}
	}
	return view
}
