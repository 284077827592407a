package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds reviewguard configuration. Values come from
// ~/.omc/config.yaml overlaid by <root>/.omc/config.yaml; missing files
// mean defaults.
type Config struct {
	// StaleAfter is the inactivity window after which review state is
	// treated as abandoned. Duration string, default "2h".
	StaleAfter string `yaml:"stale_after"`

	// MaxReinforcements caps how many times the guard blocks a stop
	// before letting the session go. Default: 10.
	MaxReinforcements int `yaml:"max_reinforcements"`

	// StdinTimeout bounds the wait for the stop payload on stdin.
	// Duration string, default "5s".
	StdinTimeout string `yaml:"stdin_timeout"`

	// StateFile overrides the state file path (relative paths resolve
	// against the project root). Default: ".omc/state/dhh-review-state.json".
	StateFile string `yaml:"state_file"`

	// Hooks configures settings.json integration.
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig holds settings for the installed Stop hook entry.
type HooksConfig struct {
	// Command is the hook command line written into settings.json.
	Command string `yaml:"command"`

	// Timeout is the hook timeout in seconds written into settings.json.
	Timeout int `yaml:"timeout"`
}

// StaleAfterDuration parses the staleness window as a Duration.
func (c *Config) StaleAfterDuration() (time.Duration, error) {
	return time.ParseDuration(c.StaleAfter)
}

// StdinTimeoutDuration parses the stdin timeout as a Duration.
func (c *Config) StdinTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.StdinTimeout)
}

// Load reads configuration for a project root: global config first, then
// the project file on top. Missing files are fine; unreadable or invalid
// files are errors.
func Load(root string) (*Config, error) {
	cfg := DefaultConfig()

	if homeDir, err := os.UserHomeDir(); err == nil {
		if err := loadInto(cfg, filepath.Join(homeDir, ".omc", "config.yaml")); err != nil {
			return nil, err
		}
	}

	if err := loadInto(cfg, filepath.Join(root, ".omc", "config.yaml")); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath reads a single config file over defaults. Used by tests and
// the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadInto(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ResolveStateFile returns the absolute state file path for a project root.
func (c *Config) ResolveStateFile(root string) string {
	path := c.StateFile
	if path == "" {
		path = DefaultStateFile
	}
	path = filepath.FromSlash(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path
}
