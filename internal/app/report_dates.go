package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
	"github.com/blackwell-systems/streamlens/internal/output"
)

var (
	recentYears  int
	shareCountry string
	shareTop     int
	actorName    string
	actorYears   int
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Records added within a trailing window of years",
	Long: `List records whose date_added falls within the last N years of the
reference date (inclusive at the window start). Records with an absent
or unparseable date are left out.`,
	Example: `  # Added in the last 5 years
  streamlens report recent

  # Deterministic run against a fixed reference date
  streamlens report recent --years 3 --as-of 2021-09-25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recentYears <= 0 {
			return fmt.Errorf("invalid --years: %d (must be positive)", recentYears)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Type", "Title"}, titleRows(a.RecentlyAdded(recentYears)))
		return nil
	},
}

var yearShareCmd = &cobra.Command{
	Use:   "year-share",
	Short: "Yearly share of a country's catalog additions",
	Long: `For records whose country is exactly the given country, compute each
calendar year's percentage of that country's total additions and list
the top years. Percentages across all years (not just the listed top)
sum to 100.`,
	Example: `  # India's top 5 years (the defaults)
  streamlens report year-share

  # France, all years that fit in the top 10
  streamlens report year-share --country France --top 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shareTop <= 0 {
			return fmt.Errorf("invalid --top: %d (must be positive)", shareTop)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		shares, err := a.CountryYearShare(shareCountry, shareTop)
		if err != nil {
			return fmt.Errorf("year-share for %q: %w", shareCountry, err)
		}

		var rows [][]string
		for _, ys := range shares {
			rows = append(rows, []string{
				strconv.Itoa(ys.Year),
				output.FormatCount(ys.Count),
				fmt.Sprintf("%.2f%%", ys.Percent),
			})
		}
		printTable([]string{"Year", "Count", "Share"}, rows)
		return nil
	},
}

var actorCountCmd = &cobra.Command{
	Use:   "actor-count",
	Short: "Number of recent movies featuring an actor",
	Long: `Count movies whose cast mentions the given actor (case-insensitive)
and that were added within the last N years of the reference date.`,
	Example: `  streamlens report actor-count --actor "Salman Khan"

  streamlens report actor-count --actor "Salman Khan" --years 10 --as-of 2021-09-25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if actorName == "" {
			return fmt.Errorf("--actor is required")
		}
		if actorYears <= 0 {
			return fmt.Errorf("invalid --years: %d (must be positive)", actorYears)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}

		n := a.ActorAppearances(actorName, actorYears)
		fmt.Printf("%s appears in %s movie(s) added in the last %d years\n",
			actorName, output.FormatCount(n), actorYears)
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVar(&recentYears, "years", analyzer.DefaultRecentYears, "window length in years")
	yearShareCmd.Flags().StringVar(&shareCountry, "country", analyzer.DefaultShareCountry, "country to compute shares for (exact match)")
	yearShareCmd.Flags().IntVar(&shareTop, "top", analyzer.DefaultYearShareTop, "number of years to list")
	actorCountCmd.Flags().StringVar(&actorName, "actor", "", "actor name to search for (required)")
	actorCountCmd.Flags().IntVar(&actorYears, "years", analyzer.DefaultActorYears, "window length in years")

	reportCmd.AddCommand(recentCmd)
	reportCmd.AddCommand(yearShareCmd)
	reportCmd.AddCommand(actorCountCmd)
}
