package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Version information
	versionInfo VersionInfo
}

// VersionInfo holds build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "reviewguard",
		Short: "Session-stop guard for in-progress code reviews",
		Long: `Reviewguard keeps an AI coding session from stopping while a code
review workflow is still in progress. It ships the Stop hook itself, the
commands that manage the review state file, and a settings.json installer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.AddCommand(NewGuardCmd(a))
	a.rootCmd.AddCommand(NewReviewCmd(a))
	a.rootCmd.AddCommand(NewHooksCmd(a))
	a.rootCmd.AddCommand(NewVersionCmd(a))
}
