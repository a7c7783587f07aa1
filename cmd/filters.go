package cmd

import (
	"github.com/spf13/cobra"

	"playhist/internal/history"
)

const noDataMessage = "No data matches the current filters."

var (
	filterArtists   []string
	filterAlbums    []string
	filterPlatforms []string
)

// addFilterFlags registers the facet filter flags on an analysis command.
// Each flag is repeatable; a facet left unset defaults to every value
// present in the dataset.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&filterArtists, "artist", nil, "Only include this artist (repeatable)")
	cmd.Flags().StringArrayVar(&filterAlbums, "album", nil, "Only include this album (repeatable)")
	cmd.Flags().StringArrayVar(&filterPlatforms, "platform", nil, "Only include this platform (repeatable)")
}

func selectionFromFlags(ds *history.Dataset) history.Selection {
	sel := history.FullSelection(ds)
	if len(filterArtists) > 0 {
		sel.Artists = history.NewSet(filterArtists)
	}
	if len(filterAlbums) > 0 {
		sel.Albums = history.NewSet(filterAlbums)
	}
	if len(filterPlatforms) > 0 {
		sel.Platforms = history.NewSet(filterPlatforms)
	}
	return sel
}

// loadFiltered loads the dataset (memoized) and applies the facet filter
// flags to it.
func loadFiltered(path string) (*history.Dataset, []history.Record, error) {
	ds, err := getCache(path).Get()
	if err != nil {
		return nil, nil, err
	}
	return ds, history.Filter(ds, selectionFromFlags(ds)), nil
}
