package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Record counts by content type",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, kc := range a.TypeCounts() {
			rows = append(rows, []string{kc.Kind, output.FormatCount(kc.Count)})
		}
		printTable([]string{"Type", "Count"}, rows)
		return nil
	},
}

var topRatingsCmd = &cobra.Command{
	Use:   "top-ratings",
	Short: "Most common rating for each content type",
	Long: `Show the most frequent rating per content type. When several ratings
tie at the maximum count, every tied rating is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, kr := range a.TopRatings() {
			rows = append(rows, []string{kr.Kind, kr.Rating, output.FormatCount(kr.Count)})
		}
		printTable([]string{"Type", "Rating", "Count"}, rows)
		return nil
	},
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Record counts per genre",
	Long: `Count records per genre. A record listed under several genres counts
once toward each of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Genre", "Count"}, nameCountRows(a.GenreCounts()))
		return nil
	},
}

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Categorize every record by violence keywords in its description",
	Long: `Classify each record as "Bad" when its description mentions kill,
killed, violence or violent (case-insensitive), else "Good", and count
per category. Every record lands in exactly one category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, cc := range a.ToneBreakdown() {
			rows = append(rows, []string{cc.Category, output.FormatCount(cc.Count)})
		}
		printTable([]string{"Category", "Count"}, rows)
		return nil
	},
}

func init() {
	reportCmd.AddCommand(typesCmd)
	reportCmd.AddCommand(topRatingsCmd)
	reportCmd.AddCommand(genresCmd)
	reportCmd.AddCommand(toneCmd)
}
