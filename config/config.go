package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	DBPath           string
	LLMEndpoint      string
	LLMAPIKey        string
	LLMModel         string
	EmbEndpoint      string
	EmbAPIKey        string
	EmbModel         string
	JWTSecret        string
	AllowOrigins     string // comma-separated CORS origins
	KBAllowedDomains string // comma-separated hosts allowed for URL ingest
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "studymap.db"),
		LLMEndpoint:      get("LLM_ENDPOINT", "https://openrouter.ai/api"),
		LLMAPIKey:        get("LLM_API_KEY", ""),
		LLMModel:         get("LLM_MODEL", "mistralai/mistral-small-3.2-24b-instruct:free"),
		EmbEndpoint:      get("EMB_ENDPOINT", ""),
		EmbAPIKey:        get("EMB_API_KEY", ""),
		EmbModel:         get("EMB_MODEL", ""),
		JWTSecret:        get("JWT_SECRET", "dev-secret-change-me"),
		AllowOrigins:     get("ALLOW_ORIGINS", "*"),
		KBAllowedDomains: get("KB_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
