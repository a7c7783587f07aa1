package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"playhist/internal/analysis"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Shows aggregate metrics for the filtered history",
	Run: func(cmd *cobra.Command, args []string) {
		err := printSummary(os.Stdout, viper.GetString("file"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addFilterFlags(summaryCmd)
}

func printSummary(out io.Writer, path string) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return err
	}
	if len(view) == 0 {
		fmt.Fprintln(out, noDataMessage)
		return nil
	}

	fmt.Fprintf(out, "Total listening time: %s h\n", formatHours(analysis.TotalHours(view)))
	fmt.Fprintf(out, "Plays: %d\n", len(view))
	fmt.Fprintf(out, "Artists: %d\n", len(analysis.TopArtists(view, 0)))
	fmt.Fprintf(out, "Tracks: %d\n", len(analysis.TopTracks(view, 0)))
	fmt.Fprintf(out, "Platforms: %d\n", len(analysis.PlatformCounts(view)))
	return nil
}
