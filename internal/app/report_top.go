package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
)

var (
	countriesTop     int
	topActorsCountry string
	topActorsTop     int
)

var topCountriesCmd = &cobra.Command{
	Use:   "top-countries",
	Short: "Countries with the most catalog content",
	Long: `Count records per country and list the top entries. A record tagged
with several countries counts once toward each; ties are broken by
country name so output is stable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if countriesTop <= 0 {
			return fmt.Errorf("invalid --top: %d (must be positive)", countriesTop)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Country", "Count"}, nameCountRows(a.TopCountries(countriesTop)))
		return nil
	},
}

var topActorsCmd = &cobra.Command{
	Use:   "top-actors",
	Short: "Actors with the most movie appearances in a country",
	Long: `Count movie appearances per cast member for movies whose country list
mentions the given country (case-insensitive), and list the top actors.
Ties are broken by actor name; the list is cut hard at --top.`,
	Example: `  streamlens report top-actors --country India

  streamlens report top-actors --country "United States" --top 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if topActorsCountry == "" {
			return fmt.Errorf("--country is required")
		}
		if topActorsTop <= 0 {
			return fmt.Errorf("invalid --top: %d (must be positive)", topActorsTop)
		}

		a, err := newReportAnalyzer()
		if err != nil {
			return err
		}
		printTable([]string{"Actor", "Movies"}, nameCountRows(a.TopActors(topActorsCountry, topActorsTop)))
		return nil
	},
}

func init() {
	topCountriesCmd.Flags().IntVar(&countriesTop, "top", analyzer.DefaultCountryTop, "number of countries to list")
	topActorsCmd.Flags().StringVar(&topActorsCountry, "country", "", "country to filter movies on (required)")
	topActorsCmd.Flags().IntVar(&topActorsTop, "top", analyzer.DefaultTopActors, "number of actors to list")

	reportCmd.AddCommand(topCountriesCmd)
	reportCmd.AddCommand(topActorsCmd)
}
