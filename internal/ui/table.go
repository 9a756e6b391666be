package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shadanan/mediar/internal/media"
	"github.com/shadanan/mediar/internal/tmdb"
)

// RenderSearchTable formats combined search results as a bordered table
// with TMDB links.
func RenderSearchTable(results []tmdb.SearchResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		kind := "🎬"
		link := fmt.Sprintf("https://www.themoviedb.org/movie/%d", r.ID)
		if r.Kind == media.TypeShow {
			kind = "📺"
			link = fmt.Sprintf("https://www.themoviedb.org/tv/%d", r.ID)
		}

		language := r.Language
		if language == "" {
			language = "N/A"
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			kind,
			r.Name,
			language,
			fmt.Sprintf("%.1f", r.Popularity),
			r.Year,
			link,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "", "Name", "🌐", "⭐", "Year", "TMDB Link").
		Rows(rows...)

	return t.Render()
}

// FormatSearchOption renders one search result as an interactive
// selection label.
func FormatSearchOption(r tmdb.SearchResult) string {
	year := r.Year
	if year == "" {
		year = "N/A"
	}
	return fmt.Sprintf("%s (%s) - ID: %d - Popularity: %.1f", r.Name, year, r.ID, r.Popularity)
}
