package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for streamlens
	RootCmd = &cobra.Command{
		Use:   "streamlens",
		Short: "Analytics over a streaming media catalog export",
		Long: `streamlens imports a denormalized media catalog export (movies and
TV shows) into a local SQLite database and answers fifteen fixed
analytical questions about it: type and rating breakdowns, top
countries and actors, duration extremes, recency windows, and
keyword-based content categorization.

Quick Start:
  1. streamlens load catalog.csv
  2. streamlens report types
  3. streamlens report all

Every report is computed independently from the stored catalog; the
date-windowed reports accept --as-of so results are reproducible.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := getDBPath()
			if err != nil {
				return err
			}
			fmt.Println("streamlens: media catalog analytics")
			fmt.Println()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("Run 'streamlens load <csv>' to import a catalog.")
				fmt.Println("Run 'streamlens --help' for the full reference.")
			} else {
				fmt.Println("Tip: Run 'streamlens status' to inspect the stored catalog.")
				fmt.Println("     Run 'streamlens report all' for every report at once.")
				fmt.Println("     Run 'streamlens --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// .env is optional; flags and real env vars win over it
	_ = godotenv.Load()

	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: $STREAMLENS_DB or ~/.streamlens/streamlens.db)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value, the
// STREAMLENS_DB env var, or the default under the home directory.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("STREAMLENS_DB"); env != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".streamlens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create streamlens directory: %w", err)
	}

	return filepath.Join(dir, "streamlens.db"), nil
}
