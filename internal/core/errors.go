package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shadanan/mediar/internal/media"
)

// ErrMissingTarget reports that no destination root could be determined:
// no explicit target was given and the source has no parent directory.
var ErrMissingTarget = errors.New("unable to determine target directory")

// MetadataMismatchError reports an episode parsed from a file that has no
// corresponding entry in the show metadata. Files and catalog disagree, so
// planning must surface the offending key instead of dropping the file.
type MetadataMismatchError struct {
	Key media.EpisodeKey
}

func (e *MetadataMismatchError) Error() string {
	return fmt.Sprintf("no metadata for episode %s", e.Key)
}

// AmbiguousOutputError reports two source files mapping to the same
// destination. Picking either would silently lose data, so planning aborts.
type AmbiguousOutputError struct {
	Dest string
}

func (e *AmbiguousOutputError) Error() string {
	return fmt.Sprintf("multiple input files map to the same output: %s", e.Dest)
}

// AmbiguousMovieSourceError reports more than one primary video candidate
// in a movie source directory when exactly one is required.
type AmbiguousMovieSourceError struct {
	Candidates []string
}

func (e *AmbiguousMovieSourceError) Error() string {
	return fmt.Sprintf("expected exactly one video file in movie source, found %d:\n  %s",
		len(e.Candidates), strings.Join(e.Candidates, "\n  "))
}
