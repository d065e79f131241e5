package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockProvider struct {
	name      string
	failTimes int // fail this many calls before succeeding; -1 fails forever
	response  *Response
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		m.infoMessages = append(m.infoMessages, msg)
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		m.warnMessages = append(m.warnMessages, msg)
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider string) *Response {
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: "{\"tasks\":[]}"}}},
		ProviderName: provider,
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func helloRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Parts: []Part{{Text: "Hello"}}}}}
}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name           string
		primaryFails   int
		secondaryFails int
		fallback       bool
		retries        int
		wantProvider   string
		wantErr        error
		wantPrimary    int
		wantSecondary  int
		wantWarns      int
	}{
		{name: "primary succeeds", fallback: true, retries: 3, wantProvider: "primary", wantPrimary: 1},
		{name: "primary recovers on retry", primaryFails: 1, fallback: true, retries: 3, wantProvider: "primary", wantPrimary: 2},
		{name: "fallback to secondary", primaryFails: -1, fallback: true, retries: 2, wantProvider: "secondary", wantPrimary: 2, wantSecondary: 1, wantWarns: 1},
		{name: "all fail", primaryFails: -1, secondaryFails: -1, fallback: true, retries: 2, wantErr: ErrAllProvidersFailed, wantPrimary: 2, wantSecondary: 2, wantWarns: 2},
		{name: "fallback disabled", primaryFails: -1, fallback: false, retries: 2, wantErr: ErrAllProvidersFailed, wantPrimary: 2, wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", failTimes: tt.primaryFails, response: okResponse("primary")}
			secondary := &mockProvider{name: "secondary", failTimes: tt.secondaryFails, response: okResponse("secondary")}
			logger := &mockLogger{}

			manager := NewManager([]Provider{primary, secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   tt.retries,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := manager.GenerateContent(context.Background(), helloRequest())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info log, got %d", len(logger.infoMessages))
				}
			}

			if primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", primary.callCount, tt.wantPrimary)
			}
			if secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", secondary.callCount, tt.wantSecondary)
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &mockProvider{name: "primary", response: okResponse("primary")}
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if p.callCount != 0 {
		t.Errorf("provider should not be called for an empty request")
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	p := &mockProvider{name: "primary", failTimes: -1}
	manager := NewManager([]Provider{p}, &Config{
		RetryAttempts:   5,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if p.callCount != 1 {
		t.Errorf("expected retries to stop at the deadline, got %d calls", p.callCount)
	}
}

func TestGenerateContent_DeadlineSkipsFallback(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("fallback called after the deadline: %d calls", secondary.callCount)
	}
}
