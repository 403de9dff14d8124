package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BIOQUIZ_LLM_PROVIDER",
		"BIOQUIZ_GEMINI_API_KEY", "BIOQUIZ_GEMINI_MODEL",
		"BIOQUIZ_OPENAI_API_KEY", "BIOQUIZ_OPENAI_MODEL", "BIOQUIZ_OPENAI_BASE_URL",
		"BIOQUIZ_ANTHROPIC_API_KEY", "BIOQUIZ_ANTHROPIC_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("BIOQUIZ_LLM_PROVIDER", "openai")
	t.Setenv("BIOQUIZ_OPENAI_API_KEY", "sk-test")
	t.Setenv("BIOQUIZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing gemini key")
	}

	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discover succeeded with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "ak")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("discover = %q, %v", cfg.Provider, ok)
	}

	// Gemini takes priority when present.
	t.Setenv("GEMINI_API_KEY", "gk")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("discover = %q, %v", cfg.Provider, ok)
	}
}
