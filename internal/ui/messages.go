package ui

import "playhist/internal/history"

// DatasetReloaded is sent when the history file has been re-read, e.g. by
// the file watcher. The selection resets to the full dataset, matching a
// fresh load.
type DatasetReloaded struct {
	Dataset *history.Dataset
}
