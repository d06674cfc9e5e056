package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GigaChat GigaChatConfig
	Chat     ChatConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

// ChatConfig carries the tunables of the retrieval and answer pipeline.
// The scoring weights were never validated against real user feedback,
// so they stay configuration rather than constants.
type ChatConfig struct {
	KeywordWeight     int
	CategoryWeight    int
	RegionWeight      int
	MinKeywordResults int
	TopK              int
	ContextTopK       int
	EmbeddingDim      int
	CacheTTL          time.Duration
	LLMTimeout        time.Duration
	RegionsPath       string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	keywordWeight, _ := strconv.Atoi(getEnv("CHAT_KEYWORD_WEIGHT", "2"))
	categoryWeight, _ := strconv.Atoi(getEnv("CHAT_CATEGORY_WEIGHT", "5"))
	regionWeight, _ := strconv.Atoi(getEnv("CHAT_REGION_WEIGHT", "3"))
	minKeyword, _ := strconv.Atoi(getEnv("CHAT_MIN_KEYWORD_RESULTS", "3"))
	topK, _ := strconv.Atoi(getEnv("CHAT_TOP_K", "10"))
	contextTopK, _ := strconv.Atoi(getEnv("CHAT_CONTEXT_TOP_K", "5"))
	embeddingDim, _ := strconv.Atoi(getEnv("CHAT_EMBEDDING_DIM", "1536"))
	cacheTTLMin, _ := strconv.Atoi(getEnv("CHAT_CACHE_TTL_MINUTES", "30"))
	llmTimeout, _ := strconv.Atoi(getEnv("CHAT_LLM_TIMEOUT_SECONDS", "20"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "youthy_chat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Chat: ChatConfig{
			KeywordWeight:     keywordWeight,
			CategoryWeight:    categoryWeight,
			RegionWeight:      regionWeight,
			MinKeywordResults: minKeyword,
			TopK:              topK,
			ContextTopK:       contextTopK,
			EmbeddingDim:      embeddingDim,
			CacheTTL:          time.Duration(cacheTTLMin) * time.Minute,
			LLMTimeout:        time.Duration(llmTimeout) * time.Second,
			RegionsPath:       getEnv("CHAT_REGIONS_PATH", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
