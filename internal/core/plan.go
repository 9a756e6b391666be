package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/shadanan/mediar/internal/media"
	"github.com/shadanan/mediar/internal/tmdb"
)

// Operation is a single planned filesystem action: relocate Source to Dest
// using whichever primitive the selected mode dictates.
type Operation struct {
	Source string
	Dest   string
}

// PathBuilder computes the destination for one eligible media file. An
// empty destination with a nil error skips the file.
type PathBuilder func(path, ext string) (string, error)

// Collect walks source in lexicographic order and assembles the operation
// list. Directories and files outside the extension allow-list are skipped
// silently. Pairs where source equals destination or the destination
// already exists are dropped, which makes repeated runs idempotent. A
// destination claimed twice aborts planning: the final plan must map
// sources to destinations injectively.
func Collect(source string, build PathBuilder) ([]Operation, error) {
	var ops []Operation
	seen := make(map[string]bool)

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext, ok := media.ParseExtension(path)
		if !ok {
			return nil
		}

		dest, err := build(path, ext)
		if err != nil {
			return err
		}
		if dest == "" || dest == path {
			return nil
		}
		if _, err := os.Stat(dest); err == nil {
			return nil
		}

		if seen[dest] {
			return &AmbiguousOutputError{Dest: dest}
		}
		seen[dest] = true
		ops = append(ops, Operation{Source: path, Dest: dest})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// ResolveTarget decides the destination root: an explicit target wins,
// otherwise files are organized next to the source directory.
func ResolveTarget(source, target string) (string, error) {
	if target != "" {
		return target, nil
	}
	parent := filepath.Dir(filepath.Clean(source))
	if parent == filepath.Clean(source) {
		return "", ErrMissingTarget
	}
	return parent, nil
}

// PlanShow maps every episode file under source to
// target/Show (Year)/Season NN/Show - SxxEyy - Episode.ext. Files without
// a parsable episode key are skipped with a notice; a parsed key missing
// from the show metadata is a hard error.
func PlanShow(source, target string, show *tmdb.Show) ([]Operation, error) {
	root, err := ResolveTarget(source, target)
	if err != nil {
		return nil, err
	}

	episodes := show.Episodes()
	folder, err := sanitizeFilename(fmt.Sprintf("%s (%d)", show.Name, show.Year))
	if err != nil {
		return nil, fmt.Errorf("show title: %w", err)
	}

	return Collect(source, func(path, ext string) (string, error) {
		key, err := media.ParseEpisodeKey(path)
		if err != nil {
			log.Warn("Skipping unrecognized file", "path", path)
			return "", nil
		}

		episode, ok := episodes[key]
		if !ok {
			return "", &MetadataMismatchError{Key: key}
		}

		name, err := sanitizeFilename(fmt.Sprintf("%s - %s - %s.%s", show.Name, key, episode.Name, ext))
		if err != nil {
			return "", fmt.Errorf("episode %s: %w", key, err)
		}

		return filepath.Join(root, folder,
			fmt.Sprintf("Season %02d", episode.SeasonNumber), name), nil
	})
}

// PlanMovie maps every eligible file under source to
// target/Title (Year)/Title (Year).ext. A movie source must contain
// exactly one primary video file; ancillary files such as subtitles keep
// their distinct extensions and are exempt from the count.
func PlanMovie(source, target string, movie *tmdb.Movie) ([]Operation, error) {
	root, err := ResolveTarget(source, target)
	if err != nil {
		return nil, err
	}

	videos, err := primaryVideos(source)
	if err != nil {
		return nil, err
	}
	if len(videos) > 1 {
		return nil, &AmbiguousMovieSourceError{Candidates: videos}
	}

	title := fmt.Sprintf("%s (%d)", movie.Title, movie.Year())
	folder, err := sanitizeFilename(title)
	if err != nil {
		return nil, fmt.Errorf("movie title: %w", err)
	}

	return Collect(source, func(path, ext string) (string, error) {
		name, err := sanitizeFilename(fmt.Sprintf("%s.%s", title, ext))
		if err != nil {
			return "", err
		}
		return filepath.Join(root, folder, name), nil
	})
}

// primaryVideos lists the primary video candidates under source. Subtitles
// are ancillary, not primary content.
func primaryVideos(source string) ([]string, error) {
	var videos []string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext, ok := media.ParseExtension(path); ok && ext != "srt" {
			videos = append(videos, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return videos, nil
}
