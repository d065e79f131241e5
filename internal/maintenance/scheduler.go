// Package maintenance runs background jobs such as the recurring ledger
// cleanup on a cron scheduler.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// DefaultStartupDelay postpones startup jobs until the server is accepting
// requests.
const DefaultStartupDelay = 2 * time.Second

var (
	ErrInvalidDelay = errors.New("delay must not be negative")
	ErrInvalidTime  = errors.New("invalid time, expected HH:MM")
)

// Job is a unit of background work. It receives the scheduler's context,
// which is cancelled on Stop.
type Job func(ctx context.Context)

// Scheduler wraps a cron instance located in the service timezone.
type Scheduler struct {
	l      log.Logger
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler. A nil location means UTC.
func New(loc *time.Location, l log.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		l:      l,
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ScheduleOnce runs job a single time, delay after the scheduler starts.
func (s *Scheduler) ScheduleOnce(name string, delay time.Duration, job Job) (cron.EntryID, error) {
	if delay < 0 {
		return 0, ErrInvalidDelay
	}
	return s.cron.Schedule(&onceSchedule{delay: delay}, s.wrap(name, job)), nil
}

// ScheduleDaily runs job every day at the given HH:MM.
func (s *Scheduler) ScheduleDaily(name, timeStr string, job Job) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddJob(spec, s.wrap(name, job))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs' context and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) wrap(name string, job Job) cron.Job {
	return cron.FuncJob(func() {
		started := time.Now()
		defer func() {
			if r := recover(); r != nil {
				s.l.Errorf(s.ctx, "maintenance.%s: panic: %v", name, r)
			}
		}()
		job(s.ctx)
		s.l.Infof(s.ctx, "maintenance.%s: finished in %s", name, time.Since(started).Round(time.Millisecond))
	})
}

// onceSchedule fires once, delay after the first Next call. Afterwards it
// returns the zero time, which cron treats as "never".
type onceSchedule struct {
	mu    sync.Mutex
	delay time.Duration
	fired bool
}

func (o *onceSchedule) Next(t time.Time) time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fired {
		return time.Time{}
	}
	o.fired = true
	return t.Add(o.delay)
}

func buildDailySpec(timeStr string) (string, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(timeStr), ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, timeStr)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: hour in %q", ErrInvalidTime, timeStr)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: minute in %q", ErrInvalidTime, timeStr)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
