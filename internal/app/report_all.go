package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/streamlens/internal/analyzer"
	"github.com/blackwell-systems/streamlens/internal/output"
)

var (
	allYear     int
	allDirector string
	allActor    string
	allCountry  string
)

var reportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every report in sequence",
	Long: `Run all fifteen reports against the same catalog snapshot, printing a
section header above each. Windowed reports use their default windows
and the --as-of reference date.

The director- and actor-name reports are skipped unless --director and
--actor are given; everything else runs with its defaults. A failing
report (for example year-share over a country with no records) is
reported and the run continues.`,
	Example: `  streamlens report all

  streamlens report all --as-of 2021-09-25 --director "Rajiv Chilaka" --actor "Salman Khan"`,
	RunE: runReportAll,
}

func init() {
	reportAllCmd.Flags().IntVar(&allYear, "year", 2020, "release year for the movies-by-year section")
	reportAllCmd.Flags().StringVar(&allDirector, "director", "", "director name for the by-director section")
	reportAllCmd.Flags().StringVar(&allActor, "actor", "", "actor name for the actor sections")
	reportAllCmd.Flags().StringVar(&allCountry, "country", analyzer.DefaultShareCountry, "country for the year-share and top-actors sections")

	reportCmd.AddCommand(reportAllCmd)
}

func runReportAll(cmd *cobra.Command, args []string) error {
	a, err := newReportAnalyzer()
	if err != nil {
		return err
	}

	section := func(title string) {
		fmt.Print(output.RenderSectionHeader(title))
	}

	section("Content by type")
	var typeRows [][]string
	for _, kc := range a.TypeCounts() {
		typeRows = append(typeRows, []string{kc.Kind, output.FormatCount(kc.Count)})
	}
	printTable([]string{"Type", "Count"}, typeRows)

	section("Most common rating per type")
	var ratingRows [][]string
	for _, kr := range a.TopRatings() {
		ratingRows = append(ratingRows, []string{kr.Kind, kr.Rating, output.FormatCount(kr.Count)})
	}
	printTable([]string{"Type", "Rating", "Count"}, ratingRows)

	section(fmt.Sprintf("Movies released in %d", allYear))
	printTable([]string{"Type", "Title"}, titleRows(a.MoviesReleasedIn(allYear)))

	section(fmt.Sprintf("Top %d countries by content", analyzer.DefaultCountryTop))
	printTable([]string{"Country", "Count"}, nameCountRows(a.TopCountries(analyzer.DefaultCountryTop)))

	section("Longest movie")
	var longestRows [][]string
	for _, m := range a.LongestMovies() {
		longestRows = append(longestRows, []string{m.Title, strconv.Itoa(m.Minutes) + " min"})
	}
	printTable([]string{"Title", "Runtime"}, longestRows)

	section(fmt.Sprintf("Added in the last %d years", analyzer.DefaultRecentYears))
	printTable([]string{"Type", "Title"}, titleRows(a.RecentlyAdded(analyzer.DefaultRecentYears)))

	section("Content by director")
	if allDirector == "" {
		fmt.Println("Skipped — provide --director to run this section.")
	} else {
		printTable([]string{"Type", "Title"}, titleRows(a.ByDirector(allDirector)))
	}

	section(fmt.Sprintf("TV shows with more than %d seasons", analyzer.DefaultSeasonCutoff))
	var seasonRows [][]string
	for _, s := range a.ShowsWithMoreSeasons(analyzer.DefaultSeasonCutoff) {
		seasonRows = append(seasonRows, []string{s.Title, strconv.Itoa(s.Seasons)})
	}
	printTable([]string{"Title", "Seasons"}, seasonRows)

	section("Content per genre")
	printTable([]string{"Genre", "Count"}, nameCountRows(a.GenreCounts()))

	section(fmt.Sprintf("Yearly share of %s content", allCountry))
	shares, err := a.CountryYearShare(allCountry, analyzer.DefaultYearShareTop)
	switch {
	case errors.Is(err, analyzer.ErrNoCountryMatches):
		fmt.Printf("No records tagged with country %q.\n", allCountry)
	case err != nil:
		fmt.Printf("Failed: %v\n", err)
	default:
		var shareRows [][]string
		for _, ys := range shares {
			shareRows = append(shareRows, []string{
				strconv.Itoa(ys.Year),
				output.FormatCount(ys.Count),
				fmt.Sprintf("%.2f%%", ys.Percent),
			})
		}
		printTable([]string{"Year", "Count", "Share"}, shareRows)
	}

	section("Documentary movies")
	printTable([]string{"Type", "Title"}, titleRows(a.Documentaries()))

	section("Content without a director")
	printTable([]string{"Type", "Title"}, titleRows(a.MissingDirector()))

	section(fmt.Sprintf("Actor appearances (last %d years)", analyzer.DefaultActorYears))
	if allActor == "" {
		fmt.Println("Skipped — provide --actor to run this section.")
	} else {
		n := a.ActorAppearances(allActor, analyzer.DefaultActorYears)
		fmt.Printf("%s appears in %s movie(s).\n", allActor, output.FormatCount(n))
	}

	section(fmt.Sprintf("Top %d actors in %s movies", analyzer.DefaultTopActors, allCountry))
	printTable([]string{"Actor", "Movies"}, nameCountRows(a.TopActors(allCountry, analyzer.DefaultTopActors)))

	section("Content tone by description keywords")
	var toneRows [][]string
	for _, cc := range a.ToneBreakdown() {
		toneRows = append(toneRows, []string{cc.Category, output.FormatCount(cc.Count)})
	}
	printTable([]string{"Category", "Count"}, toneRows)

	return nil
}
