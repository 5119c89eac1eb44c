package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"worklog/internal/store"
	"worklog/internal/timecalc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all work logs in chronological order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := store.Open(cfg.DataFile)
	if err != nil {
		return err
	}

	s.OrderByDates()
	printLogs(os.Stdout, s.Snapshot())
	return nil
}

func printLogs(w io.Writer, entries []store.WorkLog) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No work logs recorded.")
		return
	}

	fmt.Fprintf(w, "%-12s %-7s %-7s %8s  %s\n", "Day", "Start", "End", "Minutes", "Night")
	for _, e := range entries {
		night := ""
		if e.IsNight {
			night = "yes"
		}
		fmt.Fprintf(w, "%-12s %-7s %-7s %8d  %s\n", e.Day, e.Start, e.End, e.Duration, night)
	}

	total := store.TotalMinutes(entries)
	night := store.NightMinutes(entries)
	fmt.Fprintf(w, "\nTotal: %s (%d min)  Night: %s (%d min)\n",
		timecalc.FormatMinutes(total), total, timecalc.FormatMinutes(night), night)
}
