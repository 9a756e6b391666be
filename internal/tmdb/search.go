package tmdb

import (
	"sort"
	"strings"
)

// Match ranking buckets: exact title matches sort first, then prefix
// matches, then everything else by popularity.
const (
	matchExact = iota
	matchPrefix
	matchOther
)

// FilterAndSort reduces combined search results to the ones worth showing.
// Results below minPopularity are dropped unless they match the query
// exactly; the language filter passes results that carry no language info.
func FilterAndSort(results []SearchResult, language string, minPopularity float64, query string) []SearchResult {
	queryLower := strings.ToLower(query)

	filtered := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if language != "" && r.Language != "" && r.Language != language {
			continue
		}
		exact := strings.ToLower(r.Name) == queryLower
		if !exact && r.Popularity < minPopularity {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ri, rj := rank(filtered[i].Name, queryLower), rank(filtered[j].Name, queryLower)
		if ri != rj {
			return ri < rj
		}
		return filtered[i].Popularity > filtered[j].Popularity
	})

	return filtered
}

func rank(name, queryLower string) int {
	nameLower := strings.ToLower(name)
	switch {
	case nameLower == queryLower:
		return matchExact
	case strings.HasPrefix(nameLower, queryLower):
		return matchPrefix
	default:
		return matchOther
	}
}
