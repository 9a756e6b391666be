package tmdb

import (
	"strconv"
	"strings"

	"github.com/shadanan/mediar/internal/media"
)

// Episode is a single catalog episode record.
type Episode struct {
	SeasonNumber  int
	EpisodeNumber int
	Name          string
	Overview      string
}

// Season owns the ordered episode list for one season.
type Season struct {
	ID           int
	SeasonNumber int
	Episodes     []Episode
}

// Show is the fully assembled series record: base metadata plus every
// season page. It is fetched once per run and read-only afterwards.
type Show struct {
	ID               int
	Name             string
	Overview         string
	Year             int
	FirstAirDate     string
	NumberOfSeasons  int
	NumberOfEpisodes int
	Seasons          []Season
}

// Episodes builds the episode lookup map keyed by canonical episode key.
// Built once per organize run.
func (s *Show) Episodes() map[media.EpisodeKey]*Episode {
	episodes := make(map[media.EpisodeKey]*Episode)
	for i := range s.Seasons {
		season := &s.Seasons[i]
		for j := range season.Episodes {
			episode := &season.Episodes[j]
			key := media.EpisodeKey{Season: season.SeasonNumber, Episode: episode.EpisodeNumber}
			episodes[key] = episode
		}
	}
	return episodes
}

// Movie is a flat catalog movie record.
type Movie struct {
	ID          int
	Title       string
	Overview    string
	ReleaseDate string
	Popularity  float64
}

// Year parses the release year out of the catalog date, or 0 when absent.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// SearchResult is a flattened search hit for either content type.
type SearchResult struct {
	ID         int
	Name       string
	Kind       media.ContentType
	Language   string
	Popularity float64
	Year       string
}

// SearchResponse carries one page of search hits plus the catalog's total
// result count.
type SearchResponse struct {
	Results      []SearchResult
	TotalResults int
}

func yearOf(date string) int {
	y, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0
	}
	return year
}

func yearLabel(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
