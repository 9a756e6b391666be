package tmdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	tmdb "github.com/ryanbradynd05/go-tmdb"
	"golang.org/x/sync/errgroup"

	"github.com/shadanan/mediar/internal/media"
)

// ErrMissingAPIKey reports that no TMDB credential was configured.
var ErrMissingAPIKey = errors.New("TMDB API key is required (set tmdb_api_key in config or the TMDB_API_TOKEN environment variable)")

// Config carries the catalog credentials and preferences. The key is
// passed in explicitly; the client never reads the environment itself.
type Config struct {
	APIKey   string
	Language string
}

// API is the subset of the TMDB client used by mediar (matches
// *tmdb.TMDb exactly, kept as an interface for testing).
type API interface {
	SearchMovie(name string, options map[string]string) (*tmdb.MovieSearchResults, error)
	SearchTv(name string, options map[string]string) (*tmdb.TvSearchResults, error)
	GetMovieInfo(id int, options map[string]string) (*tmdb.Movie, error)
	GetTvInfo(id int, options map[string]string) (*tmdb.TV, error)
	GetTvSeasonInfo(showID, seasonID int, options map[string]string) (*tmdb.TvSeason, error)
}

// Client fetches show and movie metadata from TMDB, with response caching
// and API rate limiting.
type Client struct {
	api      API
	cache    *cache.Cache
	language string
	limiter  *rateLimiter
}

// New creates a catalog client from an explicit configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	language := cfg.Language
	if language == "" {
		language = "en-US"
	}

	api := tmdb.Init(tmdb.Config{
		APIKey:   cfg.APIKey,
		Proxies:  nil,
		UseProxy: false,
	})

	return &Client{
		api:      api,
		cache:    cache.New(time.Hour, 10*time.Minute),
		language: language,
		limiter:  newRateLimiter(38, 10*time.Second), // 38 requests per 10 seconds
	}, nil
}

func (c *Client) options() map[string]string {
	return map[string]string{"language": c.language}
}

// Show fetches the series record plus all season pages and assembles them
// into a single immutable Show. Season pages are independent reads, so
// they are fetched concurrently and joined before returning.
func (c *Client) Show(ctx context.Context, id int) (*Show, error) {
	cacheKey := fmt.Sprintf("show:%d:%s", id, c.language)
	if cached, found := c.cache.Get(cacheKey); found {
		if show, ok := cached.(*Show); ok {
			return show, nil
		}
	}

	c.limiter.wait()
	tv, err := c.api.GetTvInfo(id, c.options())
	if err != nil {
		return nil, fmt.Errorf("fetch show %d: %w", id, err)
	}

	show := &Show{
		ID:               tv.ID,
		Name:             tv.Name,
		Overview:         tv.Overview,
		Year:             yearOf(tv.FirstAirDate),
		FirstAirDate:     tv.FirstAirDate,
		NumberOfSeasons:  tv.NumberOfSeasons,
		NumberOfEpisodes: tv.NumberOfEpisodes,
		Seasons:          make([]Season, tv.NumberOfSeasons),
	}

	g, _ := errgroup.WithContext(ctx)
	for number := 1; number <= tv.NumberOfSeasons; number++ {
		g.Go(func() error {
			c.limiter.wait()
			page, err := c.api.GetTvSeasonInfo(id, number, c.options())
			if err != nil {
				return fmt.Errorf("fetch season %d: %w", number, err)
			}

			season := Season{ID: page.ID, SeasonNumber: page.SeasonNumber}
			for _, episode := range page.Episodes {
				season.Episodes = append(season.Episodes, Episode{
					SeasonNumber:  episode.SeasonNumber,
					EpisodeNumber: episode.EpisodeNumber,
					Name:          episode.Name,
					Overview:      episode.Overview,
				})
			}
			show.Seasons[number-1] = season
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, show, cache.DefaultExpiration)
	return show, nil
}

// Movie fetches a single movie record.
func (c *Client) Movie(ctx context.Context, id int) (*Movie, error) {
	cacheKey := fmt.Sprintf("movie:%d:%s", id, c.language)
	if cached, found := c.cache.Get(cacheKey); found {
		if movie, ok := cached.(*Movie); ok {
			return movie, nil
		}
	}

	c.limiter.wait()
	info, err := c.api.GetMovieInfo(id, c.options())
	if err != nil {
		return nil, fmt.Errorf("fetch movie %d: %w", id, err)
	}

	movie := &Movie{
		ID:          info.ID,
		Title:       info.Title,
		Overview:    info.Overview,
		ReleaseDate: info.ReleaseDate,
		Popularity:  float64(info.Popularity),
	}

	c.cache.Set(cacheKey, movie, cache.DefaultExpiration)
	return movie, nil
}

// SearchTV queries the catalog for TV shows matching query.
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchResponse, error) {
	c.limiter.wait()
	res, err := c.api.SearchTv(query, c.options())
	if err != nil {
		return nil, fmt.Errorf("search tv %q: %w", query, err)
	}

	response := &SearchResponse{TotalResults: res.TotalResults}
	for _, r := range res.Results {
		response.Results = append(response.Results, SearchResult{
			ID:         r.ID,
			Name:       r.Name,
			Kind:       media.TypeShow,
			Language:   strings.Join(r.OriginCountry, ","),
			Popularity: float64(r.Popularity),
			Year:       yearLabel(r.FirstAirDate),
		})
	}
	return response, nil
}

// SearchMovie queries the catalog for movies matching query.
func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	c.limiter.wait()
	res, err := c.api.SearchMovie(query, c.options())
	if err != nil {
		return nil, fmt.Errorf("search movie %q: %w", query, err)
	}

	response := &SearchResponse{TotalResults: res.TotalResults}
	for _, r := range res.Results {
		response.Results = append(response.Results, SearchResult{
			ID:         r.ID,
			Name:       r.Title,
			Kind:       media.TypeMovie,
			Popularity: float64(r.Popularity),
			Year:       yearLabel(r.ReleaseDate),
		})
	}
	return response, nil
}
