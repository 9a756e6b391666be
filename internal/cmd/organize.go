package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shadanan/mediar/internal/config"
	"github.com/shadanan/mediar/internal/core"
	"github.com/shadanan/mediar/internal/log"
	"github.com/shadanan/mediar/internal/media"
	"github.com/shadanan/mediar/internal/tmdb"
	"github.com/shadanan/mediar/internal/ui"
)

// detectMaxDepth bounds the search for a representative video file when
// auto-detecting the content type.
const detectMaxDepth = 3

func init() {
	rootCmd.AddCommand(
		newOrganizeCmd("move", "Move files to the target directory", core.ModeMove),
		newOrganizeCmd("copy", "Copy files to the target directory", core.ModeCopy),
		newOrganizeCmd("link", "Create hard links in the target directory", core.ModeLink),
	)
}

func newOrganizeCmd(name, short string, mode core.Mode) *cobra.Command {
	var (
		tvID    int
		movieID int
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   name + " <source> [target]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			target := ""
			if len(args) > 1 {
				target = args[1]
			}
			return runOrganize(cmd.Context(), mode, source, target, tvID, movieID, yes)
		},
	}

	cmd.Flags().IntVar(&tvID, "tv-id", 0, "Organize as the TV show with this TMDB id")
	cmd.Flags().IntVar(&movieID, "movie-id", 0, "Organize as the movie with this TMDB id")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func runOrganize(ctx context.Context, mode core.Mode, source, target string, tvID, movieID int, yes bool) error {
	if tvID != 0 && movieID != 0 {
		return errors.New("cannot specify both --tv-id and --movie-id")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := tmdb.New(tmdb.Config{APIKey: cfg.TMDBAPIKey, Language: cfg.TMDBLanguage})
	if err != nil {
		return err
	}
	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)

	show, movie, err := resolveContent(ctx, client, source, tvID, movieID)
	if err != nil {
		return err
	}

	var ops []core.Operation
	if show != nil {
		ops, err = core.PlanShow(source, target, show)
	} else {
		ops, err = core.PlanMovie(source, target, movie)
	}
	if err != nil {
		return err
	}

	if len(ops) == 0 {
		fmt.Println("No files to process.")
		return nil
	}

	if err := ui.PrintOperations(mode, ops); err != nil {
		return err
	}

	if !yes {
		proceed, err := ui.Confirm("Proceed with operations?", true)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := log.StartSession(mode.String(), []string{source, target}); err != nil {
		clog.Warn("Could not start session log", "error", err)
	}
	execErr := core.Execute(mode, ops)
	if err := log.EndSession(); err != nil {
		clog.Warn("Could not write session log", "error", err)
	}
	if execErr != nil {
		return execErr
	}

	fmt.Println("✓ Done.")
	return nil
}

// resolveContent decides what the source directory holds: an explicit id
// wins, otherwise a sample video seeds an interactive search.
func resolveContent(ctx context.Context, client *tmdb.Client, source string, tvID, movieID int) (*tmdb.Show, *tmdb.Movie, error) {
	switch {
	case tvID != 0:
		show, err := client.Show(ctx, tvID)
		return show, nil, err
	case movieID != 0:
		movie, err := client.Movie(ctx, movieID)
		return nil, movie, err
	}

	sample, err := findSampleVideo(source)
	if err != nil {
		return nil, nil, err
	}

	kind := media.DetectType(sample)
	if err := ui.Select("Search for:", []huh.Option[media.ContentType]{
		huh.NewOption("TV Show", media.TypeShow),
		huh.NewOption("Movie", media.TypeMovie),
	}, &kind); err != nil {
		return nil, nil, err
	}

	guess, _ := media.ExtractTitle(sample)
	query, err := ui.Input(fmt.Sprintf("%s Title:", kind), guess)
	if err != nil {
		return nil, nil, err
	}

	if kind == media.TypeShow {
		show, err := selectShow(ctx, client, query)
		return show, nil, err
	}
	movie, err := selectMovie(ctx, client, query)
	return nil, movie, err
}

func selectShow(ctx context.Context, client *tmdb.Client, query string) (*tmdb.Show, error) {
	res, err := client.SearchTV(ctx, query)
	if err != nil {
		return nil, err
	}
	picked, err := selectResult("Select a TV show:", res.Results,
		fmt.Sprintf("no TV shows found for query: %s", query))
	if err != nil {
		return nil, err
	}
	return client.Show(ctx, picked.ID)
}

func selectMovie(ctx context.Context, client *tmdb.Client, query string) (*tmdb.Movie, error) {
	res, err := client.SearchMovie(ctx, query)
	if err != nil {
		return nil, err
	}
	picked, err := selectResult("Select a movie:", res.Results,
		fmt.Sprintf("no movies found for query: %s", query))
	if err != nil {
		return nil, err
	}
	return client.Movie(ctx, picked.ID)
}

func selectResult(title string, results []tmdb.SearchResult, emptyMsg string) (*tmdb.SearchResult, error) {
	if len(results) == 0 {
		return nil, errors.New(emptyMsg)
	}

	options := make([]huh.Option[int], len(results))
	for i, r := range results {
		options[i] = huh.NewOption(ui.FormatSearchOption(r), i)
	}

	index := 0
	if err := ui.Select(title, options, &index); err != nil {
		return nil, err
	}

	picked := &results[index]
	fmt.Printf("Selected: %s (ID: %d)\n", picked.Name, picked.ID)
	return picked, nil
}

// findSampleVideo returns the first media file found under source, bounded
// to a few directory levels so huge trees stay responsive.
func findSampleVideo(source string) (string, error) {
	var sample string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			rel, relErr := filepath.Rel(source, path)
			if relErr == nil && rel != "." && strings.Count(rel, string(filepath.Separator)) >= detectMaxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if _, ok := media.ParseExtension(path); ok {
			sample = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if sample == "" {
		return "", fmt.Errorf("no video files found in %s", source)
	}
	return sample, nil
}
