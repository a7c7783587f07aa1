package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"playhist/internal/analysis"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates a full YAML report of the filtered history",
	Long:  `Computes every derived view (totals, rankings, histograms, platform counts) over the filtered history and writes the bundle as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, viper.GetString("file"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addFilterFlags(reportCmd)
}

func runReport(out io.Writer, path string) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return err
	}

	// An empty view is not an error here: the report of "no data" is the
	// zero result.
	result := analysis.Aggregate(view)

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
