package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"playhist/internal/analysis"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Shows play counts per platform",
	Run: func(cmd *cobra.Command, args []string) {
		err := printPlatforms(os.Stdout, viper.GetString("file"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	addFilterFlags(platformsCmd)
}

func printPlatforms(out io.Writer, path string) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return fmt.Errorf("printPlatforms: %w", err)
	}
	if len(view) == 0 {
		fmt.Fprintln(out, noDataMessage)
		return nil
	}

	counts := analysis.PlatformCounts(view)
	a := Analysis{results: [][]string{{"Platform", "Plays"}}}
	for _, p := range counts {
		a.results = append(a.results, []string{p.Platform, strconv.Itoa(p.Count)})
	}
	a.summary = fmt.Sprintf("%d platforms across %d plays", len(counts), len(view))

	fmt.Fprint(out, a)
	return nil
}
