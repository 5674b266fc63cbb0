package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string

	// Supabase (database, auth, storage)
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseDBURL      string
	SupabaseJWKSURL    string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	StorageBucket      string

	// AI upstreams
	OpenAIAPIKey        string
	GeminiAPIKey        string
	SerperAPIKey        string
	AnythingLLMBaseURL  string
	AnythingLLMAPIKey   string
	PollinationsBaseURL string

	DefaultProvider string
	DefaultModel    string

	// SearchCacheDisabled bypasses the in-memory web search cache
	SearchCacheDisabled bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	supabaseURL := getEnv("SUPABASE_URL", "")

	// Construct JWKS URL from Supabase URL
	jwksURL := supabaseURL + "/auth/v1/.well-known/jwks.json"

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),

		SupabaseURL:        supabaseURL,
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseDBURL:      getEnv("SUPABASE_DB_URL", ""),
		SupabaseJWKSURL:    jwksURL,
		StorageBucket:      getEnv("STORAGE_BUCKET", "generated-media"),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		SerperAPIKey:        getEnv("SERPER_API_KEY", ""),
		AnythingLLMBaseURL:  getEnv("ANYTHINGLLM_BASE_URL", ""),
		AnythingLLMAPIKey:   getEnv("ANYTHINGLLM_API_KEY", ""),
		PollinationsBaseURL: getEnv("POLLINATIONS_BASE_URL", "https://image.pollinations.ai"),

		DefaultProvider: getEnv("DEFAULT_PROVIDER", "openai"),
		DefaultModel:    getEnv("DEFAULT_MODEL", "gpt-4o-mini"),

		SearchCacheDisabled: getEnv("SEARCH_CACHE_DISABLED", "false") == "true",
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	// Auto-generate based on environment
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
