package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

const (
	EnvironmentProduction  = "production"
	defaultShutdownTimeout = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	rateLimitPerMin int

	// Domains
	scheduleUC  schedule.UseCase
	recurringUC recurring.UseCase
	dateParser  *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimitPerMin int

	ScheduleUseCase  schedule.UseCase
	RecurringUseCase recurring.UseCase
	// DateParser resolves instance dates in the scheduling timezone.
	DateParser *datemath.Parser
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		rateLimitPerMin: cfg.RateLimitPerMin,
		scheduleUC:      cfg.ScheduleUseCase,
		recurringUC:     cfg.RecurringUseCase,
		dateParser:      cfg.DateParser,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule use case is required")
	}
	if srv.recurringUC == nil {
		return errors.New("recurring use case is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
