package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shadanan/mediar/internal/log"
)

// Mode selects the filesystem primitive used to realize a plan. It does
// not affect planning.
type Mode int

const (
	ModeCopy Mode = iota
	ModeMove
	ModeLink
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeMove:
		return "move"
	case ModeLink:
		return "link"
	}
	return "unknown"
}

// Execute performs the confirmed plan in order. Each destination's parent
// tree is created first, then the file is copied, renamed, or hard-linked
// per mode. The first failure aborts the rest of the batch with the
// failing path attached; completed operations are not rolled back.
func Execute(mode Mode, ops []Operation) error {
	for _, op := range ops {
		if err := executeOne(mode, op); err != nil {
			return err
		}
	}
	return nil
}

func executeOne(mode Mode, op Operation) error {
	dir := filepath.Dir(op.Dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.LogCreateDir(dir, false, err)
		return fmt.Errorf("create %s: %w", dir, err)
	}
	log.LogCreateDir(dir, true, nil)

	var err error
	switch mode {
	case ModeCopy:
		err = copyFile(op.Source, op.Dest)
	case ModeMove:
		err = os.Rename(op.Source, op.Dest)
	case ModeLink:
		err = os.Link(op.Source, op.Dest)
	default:
		err = fmt.Errorf("unsupported mode %d", mode)
	}

	log.LogTransfer(log.OperationType(mode.String()), op.Source, op.Dest, err == nil, err)
	if err != nil {
		return fmt.Errorf("%s %s: %w", mode, op.Source, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
