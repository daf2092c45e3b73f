package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
	"github.com/blackwell-systems/streamlens/internal/catalog"
	"github.com/blackwell-systems/streamlens/internal/output"
	"github.com/blackwell-systems/streamlens/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Inspect the stored catalog",
	Long: `Display the database location, how many records are stored per type,
and how many records carry a parseable added-date (the rest drop out of
the date-windowed reports).`,
	Example: `  streamlens status`,
	RunE: runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No catalog loaded — run 'streamlens load <csv>' to get started.")
		return nil
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.ListTitles()
	if err != nil {
		return err
	}

	fmt.Printf("Database: %s\n", path)
	fmt.Printf("Records:  %s\n", output.FormatCount(len(records)))

	if len(records) == 0 {
		fmt.Println("\nCatalog is empty — run 'streamlens load <csv>'.")
		return nil
	}

	a := analyzer.New(records, time.Now())
	for _, kc := range a.TypeCounts() {
		fmt.Printf("  %-10s %s\n", kc.Kind, output.FormatCount(kc.Count))
	}

	dated := 0
	for _, rec := range records {
		if _, ok := catalog.ParseAdded(rec.DateAdded); ok {
			dated++
		}
	}
	fmt.Printf("Dated:    %s of %s records have a parseable added-date\n",
		output.FormatCount(dated), output.FormatCount(len(records)))

	return nil
}
