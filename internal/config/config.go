package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, loaded from the environment
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	OpenAIKey      string
	EmbeddingModel string

	JWTSecret    string
	ChatStateTTL time.Duration

	// Ranking knobs: similarity cutoff and candidate cap are tunable
	// deployment parameters, not business constants.
	RankTopK   int
	RankMinSim float64

	// Batch knobs
	BatchPerFamily int
	BatchMaxGroups int
}

// Load reads the configuration from the environment with defaults
func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "triagebot"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("PORT", "8080"),

		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),

		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		ChatStateTTL: getDuration("CHAT_STATE_TTL", 30*time.Minute),

		RankTopK:   getInt("RANK_TOP_K", 5),
		RankMinSim: getFloat("RANK_MIN_SIM", 0.45),

		BatchPerFamily: getInt("BATCH_PER_FAMILY", 5),
		BatchMaxGroups: getInt("BATCH_MAX_GROUPS", 12),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
