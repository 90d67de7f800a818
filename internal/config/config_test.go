package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_NAME", "PORT", "CORS_ALLOW_ORIGINS",
		"AI_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"AI_MAX_OUTPUT_TOKENS", "AI_TIMEOUT_SECONDS",
		"AI_ENGINE_JWT_SECRET", "JWT_ALGORITHM", "JWT_AUDIENCE", "JWT_ISSUER",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AppName != "FertilityNest AI Engine" {
		t.Fatalf("unexpected app name: %q", cfg.AppName)
	}
	if cfg.AppPort != "5001" {
		t.Fatalf("unexpected port: %q", cfg.AppPort)
	}
	if cfg.AIProvider != ProviderGemini {
		t.Fatalf("unexpected provider: %q", cfg.AIProvider)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("unexpected model: %q", cfg.GeminiModel)
	}
	if cfg.AIMaxOutputTokens != 500 {
		t.Fatalf("unexpected token budget: %d", cfg.AIMaxOutputTokens)
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		t.Fatal("expected default CORS origins")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_MAX_OUTPUT_TOKENS", "320")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()

	if cfg.AIProvider != ProviderOpenAI {
		t.Fatalf("expected openai, got %q", cfg.AIProvider)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.OpenAIModel)
	}
	if cfg.AIMaxOutputTokens != 320 {
		t.Fatalf("unexpected token budget: %d", cfg.AIMaxOutputTokens)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "soon")

	cfg := Load()
	if cfg.AITimeoutSeconds != 20 {
		t.Fatalf("expected fallback 20, got %d", cfg.AITimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{AIProvider: ProviderGemini, GeminiAPIKey: "k"}, false},
		{"gemini without key", Config{AIProvider: ProviderGemini}, true},
		{"openai with key", Config{AIProvider: ProviderOpenAI, OpenAIAPIKey: "k"}, false},
		{"openai without key", Config{AIProvider: ProviderOpenAI}, true},
		{"mock", Config{AIProvider: ProviderMock}, false},
		{"unknown provider", Config{AIProvider: "llama"}, true},
		{"short jwt secret", Config{AIProvider: ProviderMock, ServiceJWTSecret: "short"}, true},
		{
			"jwt secret without algorithm",
			Config{AIProvider: ProviderMock, ServiceJWTSecret: "0123456789abcdef", JWTAlgorithm: " "},
			true,
		},
		{
			"jwt secret with algorithm",
			Config{AIProvider: ProviderMock, ServiceJWTSecret: "0123456789abcdef", JWTAlgorithm: "HS256"},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
