package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Filename parsing utilities.
//
// This file consolidates the regular expressions used to classify media
// files and to derive structured season/episode data from arbitrary,
// community-named file paths. Parsing is deliberately tolerant: season
// context may come from a parent directory while the episode number comes
// from the file itself, and the filename always wins over the directory
// when both carry a season marker.
var (
	// extensionRe matches the fixed allow-list of media extensions. Files
	// outside this list are silently skipped during traversal.
	extensionRe = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|flv|wmv|webm|srt)$`)

	// seasonRe matches season tokens anywhere in a path: S01, s1, Season 01,
	// Season.01, season-1. The last occurrence is authoritative so that a
	// marker in the filename overrides one in a parent directory.
	seasonRe = regexp.MustCompile(`[Ss](?:eason)?[._\-\s]*(\d+)`)

	// episodeRe matches an episode token following a season match: E05,
	// Episode 5, or a bare 1-2 digit number bounded by separators. The bare
	// form resolves track-number style names like "05 Pilot.mkv" under a
	// "Season 05" directory.
	episodeRe = regexp.MustCompile(`(?:[Ee](?:pisode)?\s*|\b)(\d{1,2})(?:[._\-]|\b)`)
)

// metadataPatterns mark where release metadata begins in a filename stem.
// Kept as an ordered list of independent expressions, reduced by
// earliest-match-wins, so each pattern stays individually testable.
var metadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ss]\d+`),
	regexp.MustCompile(`[Ee]\d+`),
	regexp.MustCompile(`\d{4}`),
	regexp.MustCompile(`\d{3,4}p`),
	regexp.MustCompile(`(?i)bluray|brrip|webrip|web-dl|hdtv|dvdrip|xvid|x264|x265|h264|h265`),
	regexp.MustCompile(`(?i)proper|repack|internal|limited|unrated|extended|directors.cut`),
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`\(.*?\)`),
}

// ErrNoEpisodeMatch reports that a path carries no recognizable
// season/episode marker. Callers treat this as "not an episode", not as a
// fatal condition.
var ErrNoEpisodeMatch = errors.New("no season/episode pattern found")

// EpisodeKey identifies an episode by season and episode number. It is a
// small value type used as a lookup key into show metadata.
type EpisodeKey struct {
	Season  int
	Episode int
}

// String renders the canonical SxxEyy form. Both components are
// zero-padded to two digits and widen naturally beyond 99.
func (k EpisodeKey) String() string {
	return fmt.Sprintf("S%02dE%02d", k.Season, k.Episode)
}

// ContentType distinguishes episodic content from movies.
type ContentType int

const (
	TypeShow ContentType = iota
	TypeMovie
)

func (t ContentType) String() string {
	if t == TypeShow {
		return "TV Show"
	}
	return "Movie"
}

// ParseExtension reports the normalized media extension of path, or false
// when the extension is missing or outside the allow-list. Directories are
// excluded by the caller; this function is pure string classification.
func ParseExtension(path string) (string, bool) {
	m := extensionRe.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// ParseEpisodeKey extracts a season/episode key from a file path using a
// two-stage scan. Stage one finds the last season marker in the whole path,
// letting a filename marker override a directory-embedded one. Stage two
// scans from the end of that match for an episode marker or a bare bounded
// number.
func ParseEpisodeKey(path string) (EpisodeKey, error) {
	seasonMatches := seasonRe.FindAllStringSubmatchIndex(path, -1)
	if len(seasonMatches) == 0 {
		return EpisodeKey{}, fmt.Errorf("%w in %q", ErrNoEpisodeMatch, path)
	}
	sm := seasonMatches[len(seasonMatches)-1]

	season, err := strconv.Atoi(path[sm[2]:sm[3]])
	if err != nil {
		return EpisodeKey{}, fmt.Errorf("invalid season number in %q: %w", path, err)
	}

	rest := path[sm[1]:]
	em := episodeRe.FindStringSubmatch(rest)
	if em == nil {
		return EpisodeKey{}, fmt.Errorf("%w in %q", ErrNoEpisodeMatch, path)
	}
	episode, err := strconv.Atoi(em[1])
	if err != nil {
		return EpisodeKey{}, fmt.Errorf("invalid episode number in %q: %w", path, err)
	}

	return EpisodeKey{Season: season, Episode: episode}, nil
}

// ExtractTitle recovers a human-readable title guess from a filename by
// truncating the stem at the earliest release-metadata token, then
// normalizing separators. Best effort only: it feeds the default value of
// an interactive search prompt and never fails.
func ExtractTitle(path string) (string, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	end := len(stem)
	for _, re := range metadataPatterns {
		if loc := re.FindStringIndex(stem); loc != nil && loc[0] < end {
			end = loc[0]
		}
	}

	cleaned := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(stem[:end])
	title := strings.Join(strings.Fields(cleaned), " ")
	if title == "" {
		return "", false
	}
	return title, true
}

// DetectType guesses whether a path names an episode or a movie. A path
// that yields an episode key is a show; everything else defaults to movie.
func DetectType(path string) ContentType {
	if _, err := ParseEpisodeKey(path); err == nil {
		return TypeShow
	}
	return TypeMovie
}
