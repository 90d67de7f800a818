package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

type Config struct {
	AppEnv           string
	AppName          string
	AppPort          string
	CORSAllowOrigins []string

	AIProvider        string
	GeminiAPIKey      string
	GeminiModel       string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	AIMaxOutputTokens int
	AITimeoutSeconds  int

	// Optional service-to-service auth; /api routes are open when unset.
	ServiceJWTSecret string
	JWTAlgorithm     string
	JWTAudience      string
	JWTIssuer        string
}

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		AppEnv:  getEnv("APP_ENV", "local"),
		AppName: getEnv("APP_NAME", "FertilityNest AI Engine"),
		AppPort: getEnv("PORT", "5001"),
		CORSAllowOrigins: getEnvCSV(
			"CORS_ALLOW_ORIGINS",
			[]string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		),
		AIProvider:        strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		AIMaxOutputTokens: getEnvInt("AI_MAX_OUTPUT_TOKENS", 500),
		AITimeoutSeconds:  getEnvInt("AI_TIMEOUT_SECONDS", 20),
		ServiceJWTSecret:  getEnv("AI_ENGINE_JWT_SECRET", ""),
		JWTAlgorithm:      getEnv("JWT_ALGORITHM", "HS256"),
		JWTAudience:       getEnv("JWT_AUDIENCE", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", ""),
	}
}

func (c Config) Validate() error {
	switch c.AIProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return errors.New("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return errors.New("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}

	if secret := strings.TrimSpace(c.ServiceJWTSecret); secret != "" {
		if len(secret) < 16 {
			return errors.New("AI_ENGINE_JWT_SECRET is too short; use at least 16 characters")
		}
		if strings.TrimSpace(c.JWTAlgorithm) == "" {
			return errors.New("JWT_ALGORITHM is required when AI_ENGINE_JWT_SECRET is set")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvCSV(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, item := range parts {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
