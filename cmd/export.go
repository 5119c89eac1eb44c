package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/export"
	"worklog/internal/store"
)

var (
	exportOut    string
	exportDelete bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all work logs to a date-stamped CSV file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportDelete, "delete", false, "delete all records after exporting")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := store.Open(cfg.DataFile)
	if err != nil {
		return err
	}

	dir := cfg.ExportDir
	if exportOut != "" {
		dir = exportOut
	}
	path := filepath.Join(dir, export.FileName(time.Now()))

	if err := export.WriteFile(s.Snapshot(), path); err != nil {
		return err
	}
	fmt.Printf("File saved to %s\n", path)

	if exportDelete {
		s.RemoveAll()
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Println("All records deleted.")
	}
	return nil
}
