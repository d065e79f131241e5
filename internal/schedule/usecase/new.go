package usecase

import (
	"context"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/gcalendar"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/llmprovider"
	pkgLog "github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// Generator produces a completion. *llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options configures the scheduling use case.
type Options struct {
	Timezone   string // default user timezone
	MaxTasks   int    // tasks sent to the planner per request
	CalendarID string
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator           // nil disables Plan
	calendar gcalendar.ICalendar // nil disables busy slots and publishing
	opts     Options
	now      func() time.Time
}

// New creates a new scheduling UseCase instance.
func New(l pkgLog.Logger, llm Generator, calendar gcalendar.ICalendar, opts Options) *implUseCase {
	if opts.Timezone == "" {
		opts.Timezone = "UTC"
	}
	if opts.MaxTasks <= 0 {
		opts.MaxTasks = defaultMaxTasks
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		opts:     opts,
		now:      time.Now,
	}
}
