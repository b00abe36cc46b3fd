package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Assistant AssistantConfig
	Catalog   CatalogConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AssistantConfig struct {
	VagueConfidenceThreshold float64
	MinFilterWeight          float64
	MaxShownProducts         int
	SessionTTLMinutes        int
	DefaultSearchLimit       int
}

type CatalogConfig struct {
	SyncedTopic         string
	SyncIntervalMinutes int
}

type AIConfig struct {
	LLMProvider   string // "ollama" or "none"
	LLMModel      string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Assistant: AssistantConfig{
			VagueConfidenceThreshold: getEnvAsFloat("ASSISTANT_VAGUE_CONFIDENCE_THRESHOLD", 0.5),
			MinFilterWeight:          getEnvAsFloat("ASSISTANT_MIN_FILTER_WEIGHT", 1.0),
			MaxShownProducts:         getEnvAsInt("ASSISTANT_MAX_SHOWN_PRODUCTS", 10),
			SessionTTLMinutes:        getEnvAsInt("ASSISTANT_SESSION_TTL_MINUTES", 30),
			DefaultSearchLimit:       getEnvAsInt("ASSISTANT_DEFAULT_SEARCH_LIMIT", 5),
		},
		Catalog: CatalogConfig{
			SyncedTopic:         getEnv("CATALOG_SYNCED_TOPIC_NAME", "CATALOG_SYNCED"),
			SyncIntervalMinutes: getEnvAsInt("CATALOG_SYNC_INTERVAL_MINUTES", 30),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "none"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
