package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/catalog"
	"github.com/blackwell-systems/streamlens/internal/output"
	"github.com/blackwell-systems/streamlens/internal/store"
)

var (
	loadAppend bool

	loadCmd = &cobra.Command{
		Use:   "load <csv>",
		Short: "Import a catalog CSV export into the database",
		Long: `Parse a catalog CSV export and store it in the streamlens database.

The file must carry a header row naming the standard columns (show_id,
type, title, director, cast, country, date_added, release_year, rating,
duration, listed_in, description). Empty optional cells are stored as
absent, not as empty strings. Rows with an unrecognized type value are
skipped and reported.

By default the import replaces the stored catalog; use --append to add
to it instead.`,
		Example: `  # Replace the stored catalog
  streamlens load catalog.csv

  # Add a second export on top of the current catalog
  streamlens load extra.csv --append`,
		Args: cobra.ExactArgs(1),
		RunE: runLoad,
	}
)

func init() {
	loadCmd.Flags().BoolVar(&loadAppend, "append", false, "add to the stored catalog instead of replacing it")

	RootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	path, err := getDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	var spinner *output.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) {
		spinner = output.NewSpinner("Importing catalog...")
		spinner.Start()
	}

	records, skipped, err := catalog.LoadCSV(csvPath)
	if err == nil {
		if loadAppend {
			for i := range records {
				if err = db.InsertTitle(&records[i]); err != nil {
					break
				}
			}
		} else {
			err = db.ReplaceTitles(records)
		}
	}

	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %s records from %s\n", output.FormatCount(len(records)), csvPath)
	if skipped > 0 {
		fmt.Printf("Skipped %s rows with an unrecognized type value\n", output.FormatCount(skipped))
	}

	total, err := db.CountTitles()
	if err != nil {
		return err
	}
	fmt.Printf("Catalog now holds %s records\n", output.FormatCount(total))

	return nil
}
