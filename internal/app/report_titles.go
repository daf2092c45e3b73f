package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
)

var (
	moviesYear    int
	directorName  string
	seasonsCutoff int
)

var moviesByYearCmd = &cobra.Command{
	Use:   "movies-by-year",
	Short: "Movies released in a given year",
	Example: `  streamlens report movies-by-year --year 2020`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if moviesYear == 0 {
			return fmt.Errorf("--year is required")
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Type", "Title"}, titleRows(a.MoviesReleasedIn(moviesYear)))
		return nil
	},
}

var longestMovieCmd = &cobra.Command{
	Use:   "longest-movie",
	Short: "Movie(s) with the longest runtime",
	Long: `Find the movie with the maximum runtime extracted from the duration
field. All movies tied at the maximum are listed; movies whose duration
has no extractable number are left out of the comparison.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, m := range a.LongestMovies() {
			rows = append(rows, []string{m.Title, strconv.Itoa(m.Minutes) + " min"})
		}
		printTable([]string{"Title", "Runtime"}, rows)
		return nil
	},
}

var byDirectorCmd = &cobra.Command{
	Use:   "by-director",
	Short: "Records directed by a given person",
	Long: `List records whose director field contains the given name
(case-insensitive). Records with no director recorded never match.`,
	Example: `  streamlens report by-director --name "Kirsten Johnson"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if directorName == "" {
			return fmt.Errorf("--name is required")
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Type", "Title"}, titleRows(a.ByDirector(directorName)))
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "TV shows with more than a given number of seasons",
	Example: `  # Shows longer than 5 seasons (the default cutoff)
  streamlens report seasons

  # Shows longer than 8 seasons
  streamlens report seasons --min 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seasonsCutoff < 0 {
			return fmt.Errorf("invalid --min: %d (must be non-negative)", seasonsCutoff)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, s := range a.ShowsWithMoreSeasons(seasonsCutoff) {
			rows = append(rows, []string{s.Title, strconv.Itoa(s.Seasons)})
		}
		printTable([]string{"Title", "Seasons"}, rows)
		return nil
	},
}

var documentariesCmd = &cobra.Command{
	Use:   "documentaries",
	Short: "Movies tagged as documentaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Type", "Title"}, titleRows(a.Documentaries()))
		return nil
	},
}

var missingDirectorCmd = &cobra.Command{
	Use:   "missing-director",
	Short: "Records with no director recorded",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Type", "Title"}, titleRows(a.MissingDirector()))
		return nil
	},
}

func init() {
	moviesByYearCmd.Flags().IntVar(&moviesYear, "year", 0, "release year to filter on (required)")
	byDirectorCmd.Flags().StringVar(&directorName, "name", "", "director name to search for (required)")
	seasonsCmd.Flags().IntVar(&seasonsCutoff, "min", analyzer.DefaultSeasonCutoff, "include shows with strictly more seasons than this")

	reportCmd.AddCommand(moviesByYearCmd)
	reportCmd.AddCommand(longestMovieCmd)
	reportCmd.AddCommand(byDirectorCmd)
	reportCmd.AddCommand(seasonsCmd)
	reportCmd.AddCommand(documentariesCmd)
	reportCmd.AddCommand(missingDirectorCmd)
}
