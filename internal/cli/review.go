package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Grupo-AFAL/reviewguard/internal/cli/tui"
	"github.com/Grupo-AFAL/reviewguard/internal/config"
	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// ReviewOptions holds flags shared by the review subcommands
type ReviewOptions struct {
	Cwd       string // Project root (defaults to current directory)
	StateFile string // State file override
	JSON      bool   // Output as JSON instead of formatted text
	Force     bool   // Replace an existing active review
	NoTUI     bool   // Disable the watch TUI even on a terminal
}

// NewReviewCmd creates the review command group. These subcommands are the
// external actor in the state file's lifecycle: start creates it, done
// deletes it, the guard only ever refreshes it.
func NewReviewCmd(app *App) *cobra.Command {
	var opts ReviewOptions

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage the review workflow state",
	}

	cmd.PersistentFlags().StringVar(&opts.Cwd, "cwd", "", "Project root (defaults to current directory)")
	cmd.PersistentFlags().StringVar(&opts.StateFile, "state-file", "", "State file path override")

	startCmd := &cobra.Command{
		Use:   "start [target]",
		Short: "Mark a review workflow as in progress",
		Long: `Create the review state file that makes the session-stop guard block
premature termination. The optional target names what is being reviewed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.Join(args, " ")
			return app.StartReview(cmd, opts, target)
		},
	}
	startCmd.Flags().BoolVar(&opts.Force, "force", false, "Replace an existing active review")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current review state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ShowReviewStatus(cmd, opts)
		},
	}
	statusCmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON instead of formatted text")

	doneCmd := &cobra.Command{
		Use:   "done",
		Short: "Mark the review complete and clear its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.CompleteReview(cmd, opts)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the review state in a live TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.WatchReview(cmd, opts)
		},
	}
	watchCmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Print a one-shot status instead of the TUI")

	cmd.AddCommand(startCmd, statusCmd, doneCmd, watchCmd)

	return cmd
}

// resolveReview loads config and builds the store for the review commands.
func resolveReview(opts ReviewOptions) (*state.FileStore, *config.Config, error) {
	root := opts.Cwd
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	path := opts.StateFile
	if path == "" {
		path = cfg.ResolveStateFile(root)
	}

	return state.NewFileStoreAt(path), cfg, nil
}

// StartReview creates an active review state.
func (a *App) StartReview(cmd *cobra.Command, opts ReviewOptions, target string) error {
	store, cfg, err := resolveReview(opts)
	if err != nil {
		return err
	}

	staleAfter, err := cfg.StaleAfterDuration()
	if err != nil {
		return err
	}

	now := time.Now()

	existing, err := store.Load()
	if err != nil {
		return err
	}
	if existing != nil && existing.Active && !existing.IsStale(now, staleAfter) && !opts.Force {
		return fmt.Errorf("a review of %q is already in progress (started %s ago); finish it with 'reviewguard review done' or pass --force",
			existing.Target, now.Sub(existing.StartedAt).Round(time.Second))
	}

	s := state.NewReviewState(target, now)
	if err := store.Save(s); err != nil {
		return err
	}

	label := target
	if label == "" {
		label = "(unnamed)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Review started: %s\n", label)
	fmt.Fprintf(cmd.OutOrStdout(), "  State: %s\n", store.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "  The session-stop guard will block stops until 'reviewguard review done'.\n")

	return nil
}

// reviewStatusView is the JSON shape for `review status --json`.
type reviewStatusView struct {
	Active             bool       `json:"active"`
	Target             string     `json:"target,omitempty"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	LastCheckedAt      *time.Time `json:"last_checked_at,omitempty"`
	ReinforcementCount int        `json:"reinforcement_count"`
	Stale              bool       `json:"stale"`
}

// ShowReviewStatus renders the current review state.
func (a *App) ShowReviewStatus(cmd *cobra.Command, opts ReviewOptions) error {
	store, cfg, err := resolveReview(opts)
	if err != nil {
		return err
	}

	staleAfter, err := cfg.StaleAfterDuration()
	if err != nil {
		return err
	}

	s, err := store.Load()
	if err != nil {
		return err
	}

	now := time.Now()

	if opts.JSON {
		view := reviewStatusView{}
		if s != nil {
			view = reviewStatusView{
				Active:             s.Active,
				Target:             s.Target,
				StartedAt:          &s.StartedAt,
				LastCheckedAt:      &s.LastCheckedAt,
				ReinforcementCount: s.ReinforcementCount,
				Stale:              s.IsStale(now, staleAfter),
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	useColor := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(cmd.OutOrStdout(), renderReviewStatus(s, now, staleAfter, cfg.MaxReinforcements, useColor))

	return nil
}

// CompleteReview deletes the review state file.
func (a *App) CompleteReview(cmd *cobra.Command, opts ReviewOptions) error {
	store, _, err := resolveReview(opts)
	if err != nil {
		return err
	}

	s, err := store.Load()
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No review in progress")
		return nil
	}

	if err := store.Delete(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Review complete (%d reminders issued)\n", s.ReinforcementCount)

	return nil
}

// WatchReview runs the live state watcher, falling back to a one-shot
// status when stdout is not a terminal.
func (a *App) WatchReview(cmd *cobra.Command, opts ReviewOptions) error {
	useTUI := !opts.NoTUI && term.IsTerminal(int(os.Stdout.Fd()))
	if !useTUI {
		return a.ShowReviewStatus(cmd, opts)
	}

	store, cfg, err := resolveReview(opts)
	if err != nil {
		return err
	}

	staleAfter, err := cfg.StaleAfterDuration()
	if err != nil {
		return err
	}

	model := tui.NewModel(store, staleAfter, cfg.MaxReinforcements)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return nil
}
