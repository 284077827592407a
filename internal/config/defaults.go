package config

const (
	DefaultStaleAfter        = "2h"
	DefaultMaxReinforcements = 10
	DefaultStdinTimeout      = "5s"
	DefaultStateFile         = ".omc/state/dhh-review-state.json"
	DefaultHookCommand       = "reviewguard guard"
	DefaultHookTimeout       = 30
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		StaleAfter:        DefaultStaleAfter,
		MaxReinforcements: DefaultMaxReinforcements,
		StdinTimeout:      DefaultStdinTimeout,
		StateFile:         DefaultStateFile,
		Hooks: HooksConfig{
			Command: DefaultHookCommand,
			Timeout: DefaultHookTimeout,
		},
	}
}
