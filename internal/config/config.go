package config

import (
	"os"
	"strconv"
	"time"
)

// StoreBackend selects the durable session store.
const (
	StoreMongo  = "mongo"
	StoreFile   = "file"
	StoreMemory = "memory"
)

type Config struct {
	HTTPPort      string
	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	DataDir       string
	RedisAddr     string
	SessionTTL    time.Duration
	BankPath      string
}

// Load reads configuration from the environment. Missing values fall back to
// development defaults; the Mongo backend must be selected explicitly.
func Load() *Config {
	return &Config{
		HTTPPort:      getEnv("PORT", "8000"),
		StoreBackend:  getEnv("STORE_BACKEND", StoreFile),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "excel_interviewer"),
		DataDir:       getEnv("DATA_DIR", "./data/sessions"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SessionTTL:    getEnvDuration("SESSION_CACHE_TTL", 10*time.Minute),
		BankPath:      os.Getenv("QUESTION_BANK_PATH"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
