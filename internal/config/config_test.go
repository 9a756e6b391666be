package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".mediar")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() with no config file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TMDB_API_TOKEN", "")
	writeConfig(t, home, `{"tmdb_api_key": "file-key", "tmdb_language": "de-DE", "min_popularity": 5}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	want := &Config{
		TMDBAPIKey:       "file-key",
		TMDBLanguage:     "de-DE",
		MinPopularity:    5,
		EnableLogging:    true, // unset fields keep their defaults
		LogRetentionDays: 30,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TMDB_API_TOKEN", "env-token")
	writeConfig(t, home, `{"tmdb_api_key": "file-key"}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.TMDBAPIKey != "env-token" {
		t.Errorf("Load().TMDBAPIKey = %q, want %q", cfg.TMDBAPIKey, "env-token")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{not json`)

	if _, err := Load(); err == nil {
		t.Error("Load() = nil, want parse error")
	}
}
