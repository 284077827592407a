package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content for testing
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultStaleAfter, cfg.StaleAfter)
	assert.Equal(t, DefaultMaxReinforcements, cfg.MaxReinforcements)
	assert.Equal(t, DefaultStdinTimeout, cfg.StdinTimeout)
	assert.Equal(t, DefaultStateFile, cfg.StateFile)
	assert.Equal(t, DefaultHookCommand, cfg.Hooks.Command)
	assert.Equal(t, DefaultHookTimeout, cfg.Hooks.Timeout)

	require.NoError(t, cfg.Validate())

	d, err := cfg.StaleAfterDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, d)

	d, err = cfg.StdinTimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
stale_after: 45m
max_reinforcements: 3
stdin_timeout: 1s
state_file: .review/state.json
hooks:
  command: reviewguard guard --cwd /work
  timeout: 60
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "45m", cfg.StaleAfter)
	assert.Equal(t, 3, cfg.MaxReinforcements)
	assert.Equal(t, "1s", cfg.StdinTimeout)
	assert.Equal(t, ".review/state.json", cfg.StateFile)
	assert.Equal(t, "reviewguard guard --cwd /work", cfg.Hooks.Command)
	assert.Equal(t, 60, cfg.Hooks.Timeout)
}

func TestLoadFromPath_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "max_reinforcements: 5\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxReinforcements)
	assert.Equal(t, DefaultStaleAfter, cfg.StaleAfter)
	assert.Equal(t, DefaultStateFile, cfg.StateFile)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "stale_after: [unclosed\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestLoad_ProjectOverridesRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".omc", "config.yaml"), "stale_after: 30m\n")

	// Point HOME somewhere empty so the global file does not interfere.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "30m", cfg.StaleAfter)
}

func TestLoad_GlobalThenProjectOverlay(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".omc", "config.yaml"), "stale_after: 30m\nmax_reinforcements: 4\n")

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".omc", "config.yaml"), "max_reinforcements: 7\n")

	cfg, err := Load(root)
	require.NoError(t, err)

	// Project wins where set, global fills the rest.
	assert.Equal(t, 7, cfg.MaxReinforcements)
	assert.Equal(t, "30m", cfg.StaleAfter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad stale_after", func(c *Config) { c.StaleAfter = "soon" }, "stale_after"},
		{"negative stale_after", func(c *Config) { c.StaleAfter = "-1h" }, "stale_after"},
		{"bad stdin_timeout", func(c *Config) { c.StdinTimeout = "x" }, "stdin_timeout"},
		{"zero stdin_timeout", func(c *Config) { c.StdinTimeout = "0s" }, "stdin_timeout"},
		{"negative reinforcements", func(c *Config) { c.MaxReinforcements = -1 }, "max_reinforcements"},
		{"empty state file", func(c *Config) { c.StateFile = "" }, "state_file"},
		{"negative hook timeout", func(c *Config) { c.Hooks.Timeout = -5 }, "hooks.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveStateFile(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.ResolveStateFile("/work/project")
	assert.Equal(t, filepath.Join("/work/project", ".omc", "state", "dhh-review-state.json"), got)

	cfg.StateFile = "/var/lib/review.json"
	assert.Equal(t, "/var/lib/review.json", cfg.ResolveStateFile("/work/project"))

	cfg.StateFile = ""
	assert.Equal(t, filepath.Join("/ro", ".omc", "state", "dhh-review-state.json"), cfg.ResolveStateFile("/ro"))
}
