package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	APIBaseURL  string
	APITimeout  time.Duration
	StoreDriver string
	StorePath   string
	RedisURL    string
	RedisAddr   string
	RedisPass   string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil || apiTimeout <= 0 {
		apiTimeout = 10 * time.Second
	}

	AppConfig = &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeout:  apiTimeout,
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		StorePath:   getEnv("STORE_PATH", "./data/widget-store.json"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Remote shop API: %s", AppConfig.APIBaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
