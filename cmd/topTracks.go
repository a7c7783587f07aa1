/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
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

var topTracksNumber int
var topTracksCmd = &cobra.Command{
	Use:   "top-tracks",
	Short: "Shows the tracks with the most listening time",
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopTracks(os.Stdout, viper.GetString("file"), topTracksNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)

	topTracksCmd.Flags().IntVarP(&topTracksNumber, "number", "n", analysis.DefaultTopN, "number of results to return")
	addFilterFlags(topTracksCmd)
}

func printTopTracks(out io.Writer, path string, numToReturn int) error {
	_, view, err := loadFiltered(path)
	if err != nil {
		return fmt.Errorf("printTopTracks: %w", err)
	}
	if len(view) == 0 {
		fmt.Fprintln(out, noDataMessage)
		return nil
	}

	a := Analysis{results: [][]string{{"Track", "Hours", "Plays"}}}
	for _, g := range analysis.TopTracks(view, numToReturn) {
		a.results = append(a.results, []string{g.Name, formatHours(g.Hours), strconv.Itoa(g.Plays)})
	}
	a.summary = fmt.Sprintf("%d tracks and %s hours in the filtered history",
		len(analysis.TopTracks(view, 0)), formatHours(analysis.TotalHours(view)))

	fmt.Fprint(out, a)
	return nil
}
