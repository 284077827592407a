package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if d, err := time.ParseDuration(c.StaleAfter); err != nil {
		return fmt.Errorf("invalid stale_after %q: %w", c.StaleAfter, err)
	} else if d <= 0 {
		return fmt.Errorf("stale_after must be positive, got %q", c.StaleAfter)
	}

	if d, err := time.ParseDuration(c.StdinTimeout); err != nil {
		return fmt.Errorf("invalid stdin_timeout %q: %w", c.StdinTimeout, err)
	} else if d <= 0 {
		return fmt.Errorf("stdin_timeout must be positive, got %q", c.StdinTimeout)
	}

	if c.MaxReinforcements < 0 {
		return fmt.Errorf("max_reinforcements cannot be negative: %d", c.MaxReinforcements)
	}

	if c.StateFile == "" {
		return fmt.Errorf("state_file cannot be empty")
	}

	if c.Hooks.Timeout < 0 {
		return fmt.Errorf("hooks.timeout cannot be negative: %d", c.Hooks.Timeout)
	}

	return nil
}
