package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/config"
	_ "github.com/nikitalobanov12/dayflow-sub002/docs" // Swagger docs
	"github.com/nikitalobanov12/dayflow-sub002/internal/bootstrap"
	"github.com/nikitalobanov12/dayflow-sub002/internal/httpserver"
	"github.com/nikitalobanov12/dayflow-sub002/internal/maintenance"
	scheduleUC "github.com/nikitalobanov12/dayflow-sub002/internal/schedule/usecase"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/gcalendar"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/llmprovider"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// @title       Dayflow Planning API
// @description AI-assisted scheduling with placement validation and a recurring task instance ledger.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dayflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	dateParser, err := datemath.NewParser(cfg.Scheduling.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduling.Timezone, err)
		cfg.Scheduling.Timezone = "UTC"
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 4. Recurring ledger
	ledger, err := bootstrap.NewLedger(ctx, cfg.Ledger, cfg.Database, dateParser.Location(), logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize recurring ledger: %v", err)
		return
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Warnf(context.Background(), "Failed to close ledger: %v", err)
		}
	}()
	recurringUseCase := ledger.UseCase

	// 5. LLM planner (optional)
	var planner scheduleUC.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM planner not available (optional): %v", err)
	} else {
		planner = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      llmprovider.ParseDuration(cfg.LLM.RetryDelay, llmprovider.DefaultRetryDelay),
			MaxTotalTimeout: llmprovider.ParseDuration(cfg.LLM.MaxTotalTimeout, llmprovider.DefaultMaxTotalTimeout),
		}, logger)
		logger.Infof(ctx, "LLM planner initialized with %d provider(s)", len(providers))
	}

	// 6. Google Calendar (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	scheduleUseCase := scheduleUC.New(logger, planner, calendarClient, scheduleUC.Options{
		Timezone:   cfg.Scheduling.Timezone,
		MaxTasks:   cfg.Scheduling.MaxTasks,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	// 7. Startup maintenance: migrate or clean up the ledger once, shortly
	// after boot.
	scheduler := maintenance.New(dateParser.Location(), logger)
	delay, err := time.ParseDuration(cfg.Ledger.MaintenanceDelay)
	if err != nil || delay < 0 {
		delay = maintenance.DefaultStartupDelay
	}
	if _, err := scheduler.ScheduleOnce("ledger", delay, func(ctx context.Context) {
		out := recurringUseCase.RunMaintenance(ctx)
		logger.Infof(ctx, "Ledger maintenance: users=%d migrated=%d removed=%d failed=%d",
			out.Users, out.Migrated, out.Removed, out.Failed)
	}); err != nil {
		logger.Warnf(ctx, "Failed to schedule ledger maintenance: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.Scheduling.RateLimitPerMin,
		ScheduleUseCase:  scheduleUseCase,
		RecurringUseCase: recurringUseCase,
		DateParser:       dateParser,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
