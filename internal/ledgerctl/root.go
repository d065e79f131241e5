// Package ledgerctl implements the ledgerctl command tree for operating the
// recurring instance ledger outside the API server.
package ledgerctl

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

var errUserRequired = errors.New("--user is required")

// Env is what every command needs once configuration has been applied.
type Env struct {
	Ledger recurring.UseCase
	Dates  *datemath.Parser
	Close  func() error
}

// Opener builds the command environment. It runs lazily so that --help
// never touches storage.
type Opener func(ctx context.Context) (*Env, error)

type app struct {
	open Opener
	user string
}

// NewRootCmd returns the ledgerctl root command.
func NewRootCmd(open Opener) *cobra.Command {
	a := &app{open: open}

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the recurring task instance ledger",
		Long: `ledgerctl inspects and maintains the recurring instance ledger using the
same configuration as the API server (config.yaml and environment).

Examples:
  ledgerctl maintain
  ledgerctl migrate --user alice
  ledgerctl status --user alice --task 42
  ledgerctl complete --user alice --task 42 --date today
  ledgerctl cleanup --user alice --days 30`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.user, "user", "", "user id the command acts for")

	root.AddCommand(
		a.maintainCmd(),
		a.migrateCmd(),
		a.cleanupCmd(),
		a.statusCmd(),
		a.completeCmd(true),
		a.completeCmd(false),
	)
	return root
}

// withEnv opens the environment, runs fn and closes it.
func (a *app) withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *Env) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := a.open(ctx)
	if err != nil {
		return err
	}
	if env.Close != nil {
		defer env.Close()
	}
	return fn(ctx, env)
}
