package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Generator GeneratorConfig
	Holidays  HolidaysConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type GeneratorConfig struct {
	BaseURL string
	Timeout int // seconds
}

type HolidaysConfig struct {
	FeedURL      string
	SyncInterval int // hours, 0 disables the sync worker
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./shiftline.db"),
		},
		Generator: GeneratorConfig{
			BaseURL: getEnv("GENERATOR_BASE_URL", "http://localhost:9090"),
			Timeout: getEnvAsInt("GENERATOR_TIMEOUT", 60),
		},
		Holidays: HolidaysConfig{
			FeedURL:      getEnv("HOLIDAY_FEED_URL", ""),
			SyncInterval: getEnvAsInt("HOLIDAY_SYNC_INTERVAL", 24),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
