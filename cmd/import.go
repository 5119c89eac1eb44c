package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/export"
	"worklog/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import work logs from a CSV file",
	Long: `Import reads a CSV file in the export format (day,start,end,duration,isNight),
appends every valid row to the store and re-sorts it chronologically.
Rows that do not fit the format are skipped. Existing records are not
checked for duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := store.Open(cfg.DataFile)
	if err != nil {
		return err
	}

	imported := export.ReadFile(args[0])
	if len(imported) == 0 {
		fmt.Println("No valid rows found in file.")
		return nil
	}

	s.InsertAll(imported)
	s.OrderByDates()
	if err := s.Save(); err != nil {
		return err
	}

	fmt.Printf("%d records imported.\n", len(imported))
	return nil
}
