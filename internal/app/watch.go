package app

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
	"github.com/blackwell-systems/streamlens/internal/catalog"
	"github.com/blackwell-systems/streamlens/internal/output"
	"github.com/blackwell-systems/streamlens/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch <csv>",
	Short: "Re-import the catalog whenever the CSV changes",
	Long: `Watch a catalog CSV export and re-import it into the database every
time the file is written, printing a fresh type summary after each
import. Useful while a export is being regenerated repeatedly.

Runs in the foreground; stop with Ctrl+C.`,
	Example: `  streamlens watch catalog.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("cannot watch %s: %w", csvPath, err)
	}

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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors and exporters commonly
	// replace the file via rename, which drops a direct file watch.
	dir := filepath.Dir(csvPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Initial import so the summary reflects the file as it is now.
	if err := importAndSummarize(db, csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "watch: initial import: %v\n", err)
	}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", csvPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Writers emit bursts of events per save; coalesce them with a short
	// settle timer before re-importing.
	var settle *time.Timer
	settleCh := make(chan struct{}, 1)

	target := filepath.Clean(csvPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case settleCh <- struct{}{}:
				default:
				}
			})

		case <-settleCh:
			if err := importAndSummarize(db, csvPath); err != nil {
				fmt.Fprintf(os.Stderr, "watch: import: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)

		case <-sigCh:
			fmt.Println("\nStopping watch.")
			return nil
		}
	}
}

func importAndSummarize(db *store.Store, csvPath string) error {
	records, skipped, err := catalog.LoadCSV(csvPath)
	if err != nil {
		return err
	}
	if err := db.ReplaceTitles(records); err != nil {
		return err
	}

	fmt.Printf("[%s] imported %s records", time.Now().Format("15:04:05"), output.FormatCount(len(records)))
	if skipped > 0 {
		fmt.Printf(" (%d rows skipped)", skipped)
	}
	fmt.Println()

	a := analyzer.New(records, time.Now())
	for _, kc := range a.TypeCounts() {
		fmt.Printf("  %-10s %s\n", kc.Kind, output.FormatCount(kc.Count))
	}
	return nil
}
