package history

import (
	"sort"
	"time"
)

// Record is a single listening event from the export.
type Record struct {
	Timestamp time.Time
	Artist    string
	Album     string
	Track     string
	Platform  string
	MsPlayed  int64

	// PlaytimeSeconds is MsPlayed converted to seconds, computed once at
	// load time.
	PlaytimeSeconds float64
}

// Dataset is the ordered set of records loaded from one history file. It is
// never mutated after load; filtering and aggregation only produce derived
// views.
type Dataset struct {
	records   []Record
	artists   []string
	albums    []string
	platforms []string
}

func newDataset(records []Record) *Dataset {
	ds := &Dataset{records: records}
	ds.artists = distinct(records, func(r Record) string { return r.Artist })
	ds.albums = distinct(records, func(r Record) string { return r.Album })
	ds.platforms = distinct(records, func(r Record) string { return r.Platform })
	return ds
}

func (d *Dataset) Records() []Record {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Artists returns the distinct artist names in the dataset, sorted
// lexicographically.
func (d *Dataset) Artists() []string {
	return d.artists
}

func (d *Dataset) Albums() []string {
	return d.albums
}

func (d *Dataset) Platforms() []string {
	return d.platforms
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}
