package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Grupo-AFAL/reviewguard/internal/config"
	"github.com/Grupo-AFAL/reviewguard/internal/guard"
	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// GuardOptions holds flags for the guard command
type GuardOptions struct {
	Cwd string // Project root override (normally taken from the payload)
}

// NewGuardCmd creates the guard command, the Stop-hook entry point. The
// host pipes a JSON stop event to stdin and reads the decision from stdout:
// empty means allow, a {"decision":"block",...} object means keep going.
func NewGuardCmd(app *App) *cobra.Command {
	var opts GuardOptions

	cmd := &cobra.Command{
		Use:   "guard",
		Short: "Evaluate a session-stop event (Stop hook entry point)",
		Long: `Read a session-stop payload from stdin and decide whether the session
may terminate. Prints nothing to allow, or a single JSON block decision to
ask the host to continue the review workflow. Always exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuard(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cwd, "cwd", "", "Project root override (defaults to the payload cwd)")

	return cmd
}

// runGuard never returns an error: the guard must not be the thing that
// breaks a session, so every failure collapses to the allow path.
func runGuard(cmd *cobra.Command, opts GuardOptions) error {
	d := evaluateStop(cmd.Context(), cmd.InOrStdin(), opts)
	_ = d.Emit(cmd.OutOrStdout())
	return nil
}

// evaluateStop reads the payload, resolves the project root and config,
// and runs the guard. The recover boundary maps anything unexpected
// (config loading, path resolution) to allow.
func evaluateStop(ctx context.Context, in io.Reader, opts GuardOptions) (d guard.Decision) {
	defer func() {
		if r := recover(); r != nil {
			d = guard.Allow
		}
	}()

	root := opts.Cwd
	if root == "" {
		root, _ = os.Getwd()
	}
	cfg := loadConfigOrDefault(root)

	timeout, err := cfg.StdinTimeoutDuration()
	if err != nil || timeout <= 0 {
		timeout = guard.DefaultReadTimeout
	}

	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	payload := guard.ReadPayload(rctx, in)

	ev := guard.ParseStopEvent(payload)

	// The payload cwd wins unless --cwd pinned the root explicitly.
	if opts.Cwd == "" && ev.Cwd != "" && ev.Cwd != root {
		root = ev.Cwd
		cfg = loadConfigOrDefault(root)
	}

	staleAfter, err := cfg.StaleAfterDuration()
	if err != nil || staleAfter <= 0 {
		staleAfter = state.DefaultStaleAfter
	}

	g := guard.New(guard.Options{
		Store:             state.NewFileStoreAt(cfg.ResolveStateFile(root)),
		StaleAfter:        staleAfter,
		MaxReinforcements: cfg.MaxReinforcements,
	})

	return g.Evaluate(ev)
}

// loadConfigOrDefault swallows config errors: a broken config file must
// not break the guard path.
func loadConfigOrDefault(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}
