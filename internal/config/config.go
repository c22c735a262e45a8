// Package config handles global configuration of the reference lists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/matsen/apa/internal/reflist"
)

// Config represents configuration stored in ~/.config/apa/config.yml.
type Config struct {
	ReferencesFile string   `yaml:"references_file,omitempty"` // APA citation list
	ListFile       string   `yaml:"list_file,omitempty"`       // Companion free-text list
	SortStrategies []string `yaml:"sort_strategies,omitempty"` // Applied in order after each append
	CacheDir       string   `yaml:"cache_dir,omitempty"`       // Ephemeral search index location
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "apa"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	DefaultReferencesFile = "APA_Citations.txt"
	DefaultListFile       = "Journal List.txt"
	DBFile                = "search.db"
)

// Environment variables that override the config file.
const (
	EnvConfig         = "APA_CONFIG"
	EnvReferencesFile = "APA_REFERENCES_FILE"
	EnvListFile       = "APA_LIST_FILE"
	EnvCacheDir       = "APA_CACHE_DIR"
)

// Keys lists the settable config keys in display order.
var Keys = []string{"references-file", "list-file", "sort-strategies", "cache-dir"}

// ErrUnknownKey is returned by Get and Set for keys not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Path returns the path to the config file.
// APA_CONFIG wins, then XDG_CONFIG_HOME, then ~/.config/apa/config.yml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandPath(p)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// LoadEnv loads a .env file from the working directory if present.
// Variables already set in the environment are not overridden.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file at Path, then applies environment overrides and
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from path, then applies environment overrides
// and defaults.
func LoadFrom(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if _, err := reflist.ParseStrategies(cfg.SortStrategies); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// readFile reads the raw config without overrides or defaults.
func readFile(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvReferencesFile); v != "" {
		c.ReferencesFile = v
	}
	if v := os.Getenv(EnvListFile); v != "" {
		c.ListFile = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
}

func (c *Config) applyDefaults() {
	home, _ := os.UserHomeDir()
	if c.ReferencesFile == "" {
		c.ReferencesFile = filepath.Join(home, DefaultReferencesFile)
	}
	if c.ListFile == "" {
		c.ListFile = filepath.Join(home, DefaultListFile)
	}
	if len(c.SortStrategies) == 0 {
		c.SortStrategies = append([]string(nil), reflist.DefaultStrategies...)
	}
	if c.CacheDir == "" {
		c.CacheDir = defaultCacheDir()
	}

	c.ReferencesFile = ExpandPath(c.ReferencesFile)
	c.ListFile = ExpandPath(c.ListFile)
	c.CacheDir = ExpandPath(c.CacheDir)
}

func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, ConfigDir)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, ConfigDir)
	}
	return filepath.Join(os.TempDir(), ConfigDir)
}

// Strategies resolves the configured sort strategies.
func (c *Config) Strategies() ([]reflist.Strategy, error) {
	return reflist.ParseStrategies(c.SortStrategies)
}

// DBPath returns the path of the ephemeral search index.
func (c *Config) DBPath() string {
	return filepath.Join(c.CacheDir, DBFile)
}

// Get returns the value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "references-file":
		return c.ReferencesFile, nil
	case "list-file":
		return c.ListFile, nil
	case "sort-strategies":
		return strings.Join(c.SortStrategies, ","), nil
	case "cache-dir":
		return c.CacheDir, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
}

// Set updates one key in the config file at path, leaving other keys as written.
func Set(path, key, value string) error {
	cfg, err := readFile(path)
	if err != nil {
		return err
	}

	switch normalizeKey(key) {
	case "references-file":
		cfg.ReferencesFile = value
	case "list-file":
		cfg.ListFile = value
	case "sort-strategies":
		names := splitList(value)
		if _, err := reflist.ParseStrategies(names); err != nil {
			return err
		}
		cfg.SortStrategies = names
	case "cache-dir":
		cfg.CacheDir = value
	default:
		return fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	return cfg.Save(path)
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// normalizeKey accepts snake_case and kebab-case spellings.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
