package ledgerctl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

func (a *app) scope() (model.Scope, error) {
	if a.user == "" {
		return model.Scope{}, errUserRequired
	}
	return model.Scope{UserID: a.user}, nil
}

func (a *app) maintainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maintain",
		Short: "Migrate or clean up every known user",
		Long: `Runs the same job the API server runs shortly after startup: with the
remote backend every cached user is migrated and durable rows past retention
are removed; with the local backend old cached instances are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnv(cmd, func(ctx context.Context, env *Env) error {
				out := env.Ledger.RunMaintenance(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "backend=%s users=%d migrated=%d removed=%d failed=%d\n",
					env.Ledger.Backend(), out.Users, out.Migrated, out.Removed, out.Failed)
				if out.Failed > 0 {
					return fmt.Errorf("maintenance failed for %d user(s)", out.Failed)
				}
				return nil
			})
		},
	}
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Move a user's cached instances into the durable store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scope()
			if err != nil {
				return err
			}
			return a.withEnv(cmd, func(ctx context.Context, env *Env) error {
				out, err := env.Ledger.Migrate(ctx, sc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrated=%d skipped=%d cleared=%t\n", out.Migrated, out.Skipped, out.Cleared)
				return nil
			})
		},
	}
}

func (a *app) cleanupCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove a user's instances older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scope()
			if err != nil {
				return err
			}
			if days < 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			return a.withEnv(cmd, func(ctx context.Context, env *Env) error {
				if days == 0 {
					days = env.Ledger.RetentionDays()
				}
				removed := env.Ledger.CleanupOldInstances(ctx, sc, days)
				fmt.Fprintf(cmd.OutOrStdout(), "removed=%d retention_days=%d\n", removed, days)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days (default: configured retention)")
	return cmd
}

func (a *app) statusCmd() *cobra.Command {
	var taskID int64
	var date string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show completed instances of a recurring task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scope()
			if err != nil {
				return err
			}
			if taskID <= 0 {
				return recurring.ErrInvalidTaskID
			}
			return a.withEnv(cmd, func(ctx context.Context, env *Env) error {
				w := cmd.OutOrStdout()
				if date != "" {
					day, err := resolveDate(env.Dates, date)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%d-%s completed=%t\n", taskID, day, env.Ledger.IsCompleted(ctx, sc, taskID, day))
					return nil
				}

				keys := make([]string, 0)
				for k, done := range env.Ledger.GetCompletionMap(ctx, sc, taskID) {
					if done {
						keys = append(keys, k)
					}
				}
				if len(keys) == 0 {
					fmt.Fprintln(w, "No completed instances.")
					return nil
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintln(w, k)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&taskID, "task", 0, "recurring task id")
	cmd.Flags().StringVar(&date, "date", "", "instance date (YYYY-MM-DD, today, tomorrow, yesterday)")
	return cmd
}

// completeCmd builds "complete" or, when completed is false, "uncomplete".
func (a *app) completeCmd(completed bool) *cobra.Command {
	var taskID int64
	var date string
	use, short := "complete", "Mark an instance completed"
	if !completed {
		use, short = "uncomplete", "Mark an instance incomplete"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scope()
			if err != nil {
				return err
			}
			if taskID <= 0 {
				return recurring.ErrInvalidTaskID
			}
			return a.withEnv(cmd, func(ctx context.Context, env *Env) error {
				day, err := resolveDate(env.Dates, date)
				if err != nil {
					return err
				}
				var ok bool
				if completed {
					ok = env.Ledger.MarkCompleted(ctx, sc, taskID, day)
				} else {
					ok = env.Ledger.MarkIncomplete(ctx, sc, taskID, day)
				}
				if !ok {
					return fmt.Errorf("ledger write failed for %d-%s", taskID, day)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d-%s completed=%t\n", taskID, day, completed)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&taskID, "task", 0, "recurring task id")
	cmd.Flags().StringVar(&date, "date", "today", "instance date (YYYY-MM-DD, today, tomorrow, yesterday)")
	return cmd
}

func resolveDate(p *datemath.Parser, s string) (string, error) {
	day, err := p.ParseDate(s, time.Now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", recurring.ErrInvalidDate, err)
	}
	return day.Format(datemath.DateLayout), nil
}
