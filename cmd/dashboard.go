package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"playhist/internal/history"
	"playhist/internal/ui"
)

var dashboardWatch bool
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Opens the interactive dashboard",
	Long: `Opens a terminal dashboard over the listening history. Filters by artist,
album, and platform can be changed interactively; every change recomputes
the metrics, rankings, and charts.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runDashboard(viper.GetString("file"), dashboardWatch)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolVarP(&dashboardWatch, "watch", "w", false, "reload when the history file changes")
}

func runDashboard(path string, watch bool) error {
	cache := getCache(path)
	ds, err := cache.Get()
	if err != nil {
		return fmt.Errorf("runDashboard: %w", err)
	}

	program := tea.NewProgram(ui.NewApp(ds), tea.WithAltScreen())

	if watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go cache.Watch(ctx, func(ds *history.Dataset) {
			program.Send(ui.DatasetReloaded{Dataset: ds})
		})
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("runDashboard: %w", err)
	}
	return nil
}
