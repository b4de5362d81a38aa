package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	Port            string
	DBName          string
	UsersCollection string
	UploadDir       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars always win
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:            getEnv("PORT", "8080"),
		DBName:          getEnv("DB_NAME", "users_db"),
		UsersCollection: getEnv("COLLECTION_USERS", "users"),
		UploadDir:       getEnv("UPLOAD_DIR", os.TempDir()),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// An env var set to the empty string falls back like an unset one, so
// a stray `DB_NAME=` cannot blank out a required setting.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
