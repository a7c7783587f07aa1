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

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Shows the distribution of plays over the hours of the day",
	Run: func(cmd *cobra.Command, args []string) {
		err := printHourly(os.Stdout, viper.GetString("file"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(hourlyCmd)
	addFilterFlags(hourlyCmd)
}

func printHourly(out io.Writer, path string) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return fmt.Errorf("printHourly: %w", err)
	}
	if len(view) == 0 {
		fmt.Fprintln(out, noDataMessage)
		return nil
	}

	hourly := analysis.HourlyPlays(view)
	max := 0
	for _, h := range hourly {
		if h.Plays > max {
			max = h.Plays
		}
	}

	a := Analysis{results: [][]string{{"Hour", "Plays", ""}}}
	for _, h := range hourly {
		a.results = append(a.results, []string{
			fmt.Sprintf("%02d", h.Hour),
			strconv.Itoa(h.Plays),
			bar(h.Plays, max),
		})
	}
	a.summary = fmt.Sprintf("%d plays in the filtered history", len(view))

	fmt.Fprint(out, a)
	return nil
}
