package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHeader = "ts,platform,ms_played,track_name,artist_name,album_name"

// writeHistoryCSV writes a temporary history file with the standard header
// and the given data rows, and resets the shared filter flags so tests don't
// leak selections into each other.
func writeHistoryCSV(t *testing.T, rows ...string) string {
	t.Helper()

	filterArtists = nil
	filterAlbums = nil
	filterPlatforms = nil

	lines := append([]string{testHeader}, rows...)
	path := filepath.Join(t.TempDir(), "spotify_history.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}
