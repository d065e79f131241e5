package maintenance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

func TestScheduleOnce(t *testing.T) {
	s := New(time.UTC, log.NewNop())

	var runs atomic.Int32
	done := make(chan struct{}, 1)
	if _, err := s.ScheduleOnce("test", 20*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
		done <- struct{}{}
	}); err != nil {
		t.Fatalf("ScheduleOnce: %v", err)
	}

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("runs = %d, want 1", got)
	}
}

func TestScheduleOnce_NegativeDelay(t *testing.T) {
	s := New(nil, log.NewNop())
	if _, err := s.ScheduleOnce("test", -time.Second, func(context.Context) {}); !errors.Is(err, ErrInvalidDelay) {
		t.Errorf("err = %v, want ErrInvalidDelay", err)
	}
}

func TestJobPanicIsRecovered(t *testing.T) {
	s := New(time.UTC, log.NewNop())

	done := make(chan struct{})
	s.ScheduleOnce("boom", 0, func(ctx context.Context) {
		defer close(done)
		panic("boom")
	})
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestStopCancelsJobContext(t *testing.T) {
	s := New(time.UTC, log.NewNop())

	started := make(chan struct{})
	cancelled := make(chan struct{})
	s.ScheduleOnce("wait", 0, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})
	s.Start()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start")
	}
	s.Stop()

	select {
	case <-cancelled:
	default:
		t.Error("Stop returned before the job observed cancellation")
	}
}

func TestOnceScheduleNext(t *testing.T) {
	o := &onceSchedule{delay: time.Minute}
	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	if got := o.Next(base); !got.Equal(base.Add(time.Minute)) {
		t.Errorf("first Next = %v", got)
	}
	if got := o.Next(base); !got.IsZero() {
		t.Errorf("second Next = %v, want zero", got)
	}
}

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "03:30", want: "0 30 3 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := buildDailySpec(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Errorf("err = %v, want ErrInvalidTime", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestScheduleDaily(t *testing.T) {
	s := New(time.UTC, log.NewNop())
	if _, err := s.ScheduleDaily("cleanup", "03:00", func(context.Context) {}); err != nil {
		t.Fatalf("ScheduleDaily: %v", err)
	}
	if _, err := s.ScheduleDaily("cleanup", "3am", func(context.Context) {}); err == nil {
		t.Error("expected error for invalid time")
	}
}
