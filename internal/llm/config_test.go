package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SAGE_LLM_PROVIDER", "anthropic")
	t.Setenv("SAGE_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("SAGE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromEnv_Timeout(t *testing.T) {
	t.Setenv("SAGE_LLM_TIMEOUT", "5s")
	if got := ConfigFromEnv().Timeout; got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}

	t.Setenv("SAGE_LLM_TIMEOUT", "not-a-duration")
	if got := ConfigFromEnv().Timeout; got != 30*time.Second {
		t.Errorf("timeout = %v, malformed value should keep the default", got)
	}
}

func TestConfig_ValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing openai key")
	}
}

func TestConfig_ValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llamafarm"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfig_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not require a key: %v", err)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, openai key should win", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
