package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"worklog/internal/config"
	"worklog/internal/store"
	"worklog/internal/tui"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "worklog – a personal work-hour tracker",
	Long: `worklog records daily shifts with start/end times, computed durations
and an optional night-shift flag. Data lives in a single JSON file; the
dataset can be exported to and imported from CSV.

Run without arguments to open the interactive UI.`,
	RunE: runTUI,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "path to the JSON store (default from config)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// loadConfig merges the config file with command-line overrides.
func loadConfig() config.Config {
	cfg := config.Default()
	if path, err := config.DefaultPath(); err == nil {
		cfg = config.Load(path)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	return cfg
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := store.Open(cfg.DataFile)
	if err != nil {
		return err
	}

	app := tui.NewApp(s, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
