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

var durationsBins int
var durationsCmd = &cobra.Command{
	Use:   "durations",
	Short: "Shows the distribution of play durations",
	Long: `Buckets play durations (in seconds) over the observed range. Plays shorter
than 5 seconds are treated as skips and excluded.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDurations(os.Stdout, viper.GetString("file"), durationsBins)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(durationsCmd)

	durationsCmd.Flags().IntVar(&durationsBins, "bins", analysis.DefaultBins, "number of histogram bins")
	addFilterFlags(durationsCmd)
}

func printDurations(out io.Writer, path string, bins int) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return fmt.Errorf("printDurations: %w", err)
	}
	if len(view) == 0 {
		fmt.Fprintln(out, noDataMessage)
		return nil
	}

	buckets := analysis.PlaytimeBuckets(view, bins)
	if len(buckets) == 0 {
		fmt.Fprintln(out, "No plays of 5 seconds or longer in the filtered history.")
		return nil
	}

	max := 0
	total := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
		total += b.Count
	}

	a := Analysis{results: [][]string{{"Playtime (s)", "Plays", ""}}}
	for _, b := range buckets {
		a.results = append(a.results, []string{
			fmt.Sprintf("%.0f-%.0f", b.Low, b.High),
			strconv.Itoa(b.Count),
			bar(b.Count, max),
		})
	}
	a.summary = fmt.Sprintf("%d plays of 5s or longer, %d bins", total, len(buckets))

	fmt.Fprint(out, a)
	return nil
}
