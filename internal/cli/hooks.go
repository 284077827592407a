package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Grupo-AFAL/reviewguard/internal/config"
	"github.com/Grupo-AFAL/reviewguard/internal/hooks"
)

// HooksOptions holds flags for the hooks subcommands
type HooksOptions struct {
	Settings string // Path to settings.json
	Cwd      string // Project root for config lookup
}

// NewHooksCmd creates the hooks command group for settings.json integration
func NewHooksCmd(app *App) *cobra.Command {
	var opts HooksOptions

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the Stop hook in a Claude settings.json",
	}

	cmd.PersistentFlags().StringVar(&opts.Settings, "settings", "", "Path to settings.json (defaults to ~/.claude/settings.json)")
	cmd.PersistentFlags().StringVar(&opts.Cwd, "cwd", "", "Project root for config lookup (defaults to current directory)")

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Register the guard as a Stop hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.InstallHook(cmd, opts)
		},
	}

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the guard's Stop hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.UninstallHook(cmd, opts)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the Stop hook is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.HookStatus(cmd, opts)
		},
	}

	cmd.AddCommand(installCmd, uninstallCmd, statusCmd)

	return cmd
}

// resolveSettingsPath picks the settings.json location
func resolveSettingsPath(opts HooksOptions) (string, error) {
	if opts.Settings != "" {
		return opts.Settings, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

// InstallHook merges the guard's Stop hook into settings.json.
func (a *App) InstallHook(cmd *cobra.Command, opts HooksOptions) error {
	path, err := resolveSettingsPath(opts)
	if err != nil {
		return err
	}

	root := opts.Cwd
	if root == "" {
		root, _ = os.Getwd()
	}
	cfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	changed, err := hooks.Install(path, cfg.Hooks.Command, cfg.Hooks.Timeout)
	if err != nil {
		return fmt.Errorf("install hook: %w", err)
	}

	if changed {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Stop hook installed in %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Stop hook already installed in %s\n", path)
	}

	return nil
}

// UninstallHook removes the guard's Stop hook from settings.json.
func (a *App) UninstallHook(cmd *cobra.Command, opts HooksOptions) error {
	path, err := resolveSettingsPath(opts)
	if err != nil {
		return err
	}

	changed, err := hooks.Uninstall(path)
	if err != nil {
		return fmt.Errorf("uninstall hook: %w", err)
	}

	if changed {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Stop hook removed from %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "No Stop hook found in %s\n", path)
	}

	return nil
}

// HookStatus reports whether the guard's Stop hook is installed.
func (a *App) HookStatus(cmd *cobra.Command, opts HooksOptions) error {
	path, err := resolveSettingsPath(opts)
	if err != nil {
		return err
	}

	installed, err := hooks.Installed(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	if installed {
		fmt.Fprintf(cmd.OutOrStdout(), "Stop hook installed in %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Stop hook not installed in %s\n", path)
	}

	return nil
}
