package llmprovider

import (
	"errors"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/config"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "d", Model: "deepseek-chat", Timeout: "5s"},
			{Name: "qwen", Enabled: false, Priority: 3, APIKey: "q", Model: "qwen"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "x", Model: "x"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "deepseek" || providers[1].Name() != "gemini" {
		t.Errorf("providers not sorted by priority: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", APIKey: "g", Model: "m"}},
	})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestInitializeProviders_AllBroken(t *testing.T) {
	_, err := InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}},
	})
	if err == nil {
		t.Fatal("expected an error when every provider fails to initialize")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("", time.Second); got != time.Second {
		t.Errorf("empty: got %v", got)
	}
	if got := ParseDuration("bogus", time.Second); got != time.Second {
		t.Errorf("invalid: got %v", got)
	}
	if got := ParseDuration("250ms", time.Second); got != 250*time.Millisecond {
		t.Errorf("valid: got %v", got)
	}
}
