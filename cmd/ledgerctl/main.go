package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikitalobanov12/dayflow-sub002/config"
	"github.com/nikitalobanov12/dayflow-sub002/internal/bootstrap"
	"github.com/nikitalobanov12/dayflow-sub002/internal/ledgerctl"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ledgerctl.NewRootCmd(open).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// open loads the server configuration and wires the ledger the same way the
// API does.
func open(ctx context.Context) (*ledgerctl.Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	dates, err := datemath.NewParser(cfg.Scheduling.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduling timezone: %w", err)
	}

	ledger, err := bootstrap.NewLedger(ctx, cfg.Ledger, cfg.Database, dates.Location(), logger)
	if err != nil {
		return nil, err
	}

	return &ledgerctl.Env{
		Ledger: ledger.UseCase,
		Dates:  dates,
		Close:  ledger.Close,
	}, nil
}
