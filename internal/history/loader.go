package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrSourceNotFound means the history file does not exist.
	ErrSourceNotFound = errors.New("history file not found")

	// ErrParse means the history file could not be read as CSV at all.
	ErrParse = errors.New("history file is not parseable")
)

// SchemaError reports required columns missing from the CSV header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

var requiredColumns = []string{
	"ts",
	"artist_name",
	"album_name",
	"track_name",
	"ms_played",
	"platform",
}

// The export's timestamp format has changed over the years, so try the
// layouts we've seen in the wild, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Load reads a listening-history CSV into a Dataset.
//
// Rows whose timestamp does not parse, or whose ms_played is not a
// non-negative integer, are dropped silently: they are rare data-quality
// noise, not a reason to reject the whole file. A file that keeps zero rows
// is still a valid, empty Dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}

func read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrParse, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}

		field := func(col string) string {
			if i := index[col]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		ts, ok := parseTimestamp(field("ts"))
		if !ok {
			continue
		}
		ms, err := strconv.ParseInt(field("ms_played"), 10, 64)
		if err != nil || ms < 0 {
			continue
		}

		records = append(records, Record{
			Timestamp:       ts,
			Artist:          field("artist_name"),
			Album:           field("album_name"),
			Track:           field("track_name"),
			Platform:        field("platform"),
			MsPlayed:        ms,
			PlaytimeSeconds: float64(ms) / 1000,
		})
	}

	return newDataset(records), nil
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
