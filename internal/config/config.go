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
	Auth      AuthConfig
	Ai        AIConfig
	Memory    MemoryConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

type AIConfig struct {
	LLMProvider   string // "ollama" or "huggingface"
	OllamaBaseURL string

	// One model per capability tier. The model router picks the tier,
	// the responders resolve it to one of these names.
	ModelSimple   string
	ModelStandard string
	ModelComplex  string

	// Model used for the single-word complexity classification call.
	ClassifierModel string

	EmbeddingProvider    string // "ollama", "gemini" or "jina"
	OllamaEmbeddingModel string
	GeminiAPIKey         string
	JinaAPIKey           string
	HuggingFaceAPIKey    string
}

type MemoryConfig struct {
	RetentionDays     int
	SessionTTLSeconds int
	MaxTurns          int

	// Token budgets per memory tier (approximated as 4 chars per token).
	LongTermBudget  int
	ShortTermBudget int
	WorkingBudget   int
}

type RetrievalConfig struct {
	TopK                int
	SimilarityThreshold float64
	ChunkMinSize        int
	ChunkMaxSize        int
	ChunkOverlap        int
	IngestTopic         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTLHours: getEnvAsInt("JWT_TTL_HOURS", 72),
		},
		Ai: AIConfig{
			LLMProvider:          getEnv("LLM_PROVIDER", "ollama"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ModelSimple:          getEnv("LLM_MODEL_SIMPLE", "llama3.2:1b"),
			ModelStandard:        getEnv("LLM_MODEL_STANDARD", "llama3.1:8b"),
			ModelComplex:         getEnv("LLM_MODEL_COMPLEX", "llama3.1:70b"),
			ClassifierModel:      getEnv("LLM_MODEL_CLASSIFIER", "llama3.2:1b"),
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiAPIKey:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JinaAPIKey:           getEnv("JINA_API_KEY", ""),
			HuggingFaceAPIKey:    getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Memory: MemoryConfig{
			RetentionDays:     getEnvAsInt("SHORT_TERM_RETENTION_DAYS", 7),
			SessionTTLSeconds: getEnvAsInt("WORKING_MEMORY_TTL_SECONDS", 3600),
			MaxTurns:          getEnvAsInt("MAX_CONVERSATION_TURNS", 10),
			LongTermBudget:    getEnvAsInt("LONG_TERM_MEMORY_BUDGET", 400),
			ShortTermBudget:   getEnvAsInt("SHORT_TERM_MEMORY_BUDGET", 800),
			WorkingBudget:     getEnvAsInt("WORKING_MEMORY_BUDGET", 500),
		},
		Retrieval: RetrievalConfig{
			TopK:                getEnvAsInt("VECTOR_TOP_K", 5),
			SimilarityThreshold: getEnvAsFloat("SIMILARITY_THRESHOLD", 0.5),
			ChunkMinSize:        getEnvAsInt("CHUNK_MIN_SIZE", 200),
			ChunkMaxSize:        getEnvAsInt("CHUNK_MAX_SIZE", 800),
			ChunkOverlap:        getEnvAsInt("CHUNK_OVERLAP", 50),
			IngestTopic:         getEnv("KNOWLEDGE_INGEST_TOPIC", "EMBED_KNOWLEDGE_DOC"),
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
