package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matsen/apa/internal/reflist"
)

// isolate points every config location at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvReferencesFile, "")
	t.Setenv(EnvListFile, "")
	t.Setenv(EnvCacheDir, "")
	return tmpDir
}

func TestPath(t *testing.T) {
	tmpDir := isolate(t)

	want := filepath.Join(tmpDir, "config", "apa", "config.yml")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	t.Setenv(EnvConfig, "/custom/apa.yml")
	if got := Path(); got != "/custom/apa.yml" {
		t.Errorf("Path() with %s = %q", EnvConfig, got)
	}
}

func TestLoad_NotFound(t *testing.T) {
	tmpDir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(tmpDir, DefaultReferencesFile); cfg.ReferencesFile != want {
		t.Errorf("ReferencesFile = %q, want %q", cfg.ReferencesFile, want)
	}
	if want := filepath.Join(tmpDir, DefaultListFile); cfg.ListFile != want {
		t.Errorf("ListFile = %q, want %q", cfg.ListFile, want)
	}
	if !reflect.DeepEqual(cfg.SortStrategies, reflist.DefaultStrategies) {
		t.Errorf("SortStrategies = %v, want %v", cfg.SortStrategies, reflist.DefaultStrategies)
	}
	if want := filepath.Join(tmpDir, "cache", "apa", DBFile); cfg.DBPath() != want {
		t.Errorf("DBPath() = %q, want %q", cfg.DBPath(), want)
	}
}

func TestLoad_Valid(t *testing.T) {
	tmpDir := isolate(t)

	configDir := filepath.Join(tmpDir, "config", "apa")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := []byte("references_file: ~/refs.txt\nsort_strategies: [initials]\n")
	if err := os.WriteFile(filepath.Join(configDir, ConfigFile), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(tmpDir, "refs.txt"); cfg.ReferencesFile != want {
		t.Errorf("ReferencesFile = %q, want %q", cfg.ReferencesFile, want)
	}
	strategies, err := cfg.Strategies()
	if err != nil {
		t.Fatalf("Strategies() error = %v", err)
	}
	if len(strategies) != 1 || strategies[0].Name() != reflist.InitialsName {
		t.Errorf("Strategies() = %v, want [initials]", strategies)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := isolate(t)
	path := filepath.Join(tmpDir, "bad.yml")
	if err := os.WriteFile(path, []byte("references_file: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should return error for invalid YAML")
	}
}

func TestLoad_UnknownStrategy(t *testing.T) {
	tmpDir := isolate(t)
	path := filepath.Join(tmpDir, "config.yml")
	if err := os.WriteFile(path, []byte("sort_strategies: [shuffle]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, reflist.ErrUnknownStrategy) {
		t.Errorf("LoadFrom() error = %v, want ErrUnknownStrategy", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := isolate(t)
	path := filepath.Join(tmpDir, "config.yml")
	if err := os.WriteFile(path, []byte("list_file: /from/config.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvListFile, "/from/env.txt")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.ListFile != "/from/env.txt" {
		t.Errorf("ListFile = %q, want /from/env.txt", cfg.ListFile)
	}
}

func TestLoadEnv(t *testing.T) {
	tmpDir := isolate(t)
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(EnvReferencesFile+"=/dotenv/refs.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(origWD) })
	os.Unsetenv(EnvReferencesFile)

	LoadEnv()
	if got := os.Getenv(EnvReferencesFile); got != "/dotenv/refs.txt" {
		t.Errorf("%s = %q after LoadEnv", EnvReferencesFile, got)
	}
}

func TestSetAndGet(t *testing.T) {
	tmpDir := isolate(t)
	path := filepath.Join(tmpDir, "nested", "config.yml")

	if err := Set(path, "references_file", "/tmp/refs.txt"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Set(path, "sort-strategies", "initials, lexicographic"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	tests := []struct {
		key, want string
	}{
		{"references-file", "/tmp/refs.txt"},
		{"sort-strategies", "initials,lexicographic"},
	}
	for _, tt := range tests {
		got, err := cfg.Get(tt.key)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSet_Invalid(t *testing.T) {
	tmpDir := isolate(t)
	path := filepath.Join(tmpDir, "config.yml")

	if err := Set(path, "pdf-root", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(unknown) error = %v, want ErrUnknownKey", err)
	}
	if err := Set(path, "sort-strategies", "lex,shuffle"); !errors.Is(err, reflist.ErrUnknownStrategy) {
		t.Errorf("Set(bad strategy) error = %v, want ErrUnknownStrategy", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed Set() should not create the config file")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/refs.txt", filepath.Join(home, "refs.txt")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
