package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var facetsCmd = &cobra.Command{
	Use:   "facets [artists|albums|platforms]",
	Short: "Lists the distinct values of a filterable facet",
	Long:  `Lists every distinct value of the facet present in the history, sorted lexicographically. Useful for building --artist/--album/--platform filters.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printFacets(os.Stdout, viper.GetString("file"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}

func printFacets(out io.Writer, path string, facet string) error {
	ds, err := getCache(path).Get()
	if err != nil {
		return fmt.Errorf("printFacets: %w", err)
	}

	var values []string
	switch facet {
	case "artists":
		values = ds.Artists()
	case "albums":
		values = ds.Albums()
	case "platforms":
		values = ds.Platforms()
	default:
		return fmt.Errorf("unknown facet %q - expected artists, albums, or platforms", facet)
	}

	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	return nil
}
