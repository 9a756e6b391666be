package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeCopy, "copy"},
		{ModeMove, "move"},
		{ModeLink, "link"},
		{Mode(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.mode.String(); got != test.want {
			t.Errorf("Mode(%d).String() = %q, want %q", test.mode, got, test.want)
		}
	}
}

func TestExecuteCopy(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.mkv")
	dest := filepath.Join(dir, "library", "Season 01", "dest.mkv")
	if err := os.WriteFile(source, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Execute(ModeCopy, []Operation{{Source: source, Dest: dest}})
	if err != nil {
		t.Fatalf("Execute(copy) = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile(dest) = %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("dest content = %q, want %q", got, "payload")
	}
	if _, err := os.Stat(source); err != nil {
		t.Errorf("source missing after copy: %v", err)
	}
}

func TestExecuteMove(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.mkv")
	dest := filepath.Join(dir, "library", "dest.mkv")
	if err := os.WriteFile(source, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Execute(ModeMove, []Operation{{Source: source, Dest: dest}})
	if err != nil {
		t.Fatalf("Execute(move) = %v", err)
	}

	if _, err := os.Stat(dest); err != nil {
		t.Errorf("dest missing after move: %v", err)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Errorf("source still present after move: %v", err)
	}
}

func TestExecuteLink(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.mkv")
	dest := filepath.Join(dir, "library", "dest.mkv")
	if err := os.WriteFile(source, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Execute(ModeLink, []Operation{{Source: source, Dest: dest}})
	if err != nil {
		t.Fatalf("Execute(link) = %v", err)
	}

	srcInfo, err := os.Stat(source)
	if err != nil {
		t.Fatal(err)
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("dest missing after link: %v", err)
	}
	if !os.SameFile(srcInfo, destInfo) {
		t.Error("dest is not a hard link of source")
	}
}

func TestExecuteStopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.mkv")
	if err := os.WriteFile(second, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	ops := []Operation{
		{Source: filepath.Join(dir, "missing.mkv"), Dest: filepath.Join(dir, "out", "first.mkv")},
		{Source: second, Dest: filepath.Join(dir, "out", "second.mkv")},
	}
	err := Execute(ModeMove, ops)
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing source")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "out", "second.mkv")); !os.IsNotExist(statErr) {
		t.Error("second operation ran after the first failed")
	}
	if _, statErr := os.Stat(second); statErr != nil {
		t.Errorf("second source disturbed: %v", statErr)
	}
}
