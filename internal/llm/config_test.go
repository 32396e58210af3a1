package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("KARTEI_LLM_PROVIDER", "openai")
	t.Setenv("KARTEI_OPENAI_API_KEY", "sk-test")
	t.Setenv("KARTEI_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected provider openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("expected model gpt-4o, got %q", cfg.OpenAI.Model)
	}
	// Unset values keep defaults.
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected default retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("gemini should win priority, got %q", cfg.Provider)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovered config")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}

	cfg.Anthropic.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
