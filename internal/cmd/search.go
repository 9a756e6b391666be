package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shadanan/mediar/internal/config"
	"github.com/shadanan/mediar/internal/tmdb"
	"github.com/shadanan/mediar/internal/ui"
)

var (
	searchLanguage      string
	searchMinPopularity float64
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for TV shows and movies",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "Filter by language (e.g., en, es, fr)")
	searchCmd.Flags().Float64Var(&searchMinPopularity, "min-popularity", 1.0, "Filter by minimum popularity")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := tmdb.New(tmdb.Config{APIKey: cfg.TMDBAPIKey, Language: cfg.TMDBLanguage})
	if err != nil {
		return err
	}

	minPopularity := searchMinPopularity
	if !cmd.Flags().Changed("min-popularity") {
		minPopularity = cfg.MinPopularity
	}

	// TV and movie searches are independent reads, run them in parallel.
	var tvRes, movieRes *tmdb.SearchResponse
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		tvRes, err = client.SearchTV(ctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		movieRes, err = client.SearchMovie(ctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	combined := make([]tmdb.SearchResult, 0, len(tvRes.Results)+len(movieRes.Results))
	combined = append(combined, tvRes.Results...)
	combined = append(combined, movieRes.Results...)

	filtered := tmdb.FilterAndSort(combined, searchLanguage, minPopularity, query)
	if len(filtered) == 0 {
		log.Warn("No results found", "query", query)
		return nil
	}

	fmt.Printf("\n%s\n", ui.RenderSearchTable(filtered))
	fmt.Printf("\nFound %d results (%d TV, %d movies)\n",
		tvRes.TotalResults+movieRes.TotalResults, tvRes.TotalResults, movieRes.TotalResults)
	return nil
}
