package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultSecretKey = "dev-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DatabaseURL string

	// Session secret
	SecretKey string

	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIAPIURL string

	// File upload configuration
	UploadDir         string
	MaxUploadSize     int64
	AllowedExtensions []string

	// CORS configuration
	CORSOrigins []string

	// Redis configuration (recipe drafts)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// S3 configuration (optional upload storage)
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("PORT", "5000"),
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		DatabaseURL: getEnv("DATABASE_URL", "ez_cooking.db"),
		SecretKey:   getEnv("SECRET_KEY", defaultSecretKey),

		OpenAIAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),

		UploadDir:         getEnv("UPLOAD_FOLDER", "uploads"),
		AllowedExtensions: splitList(getEnv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,webp")),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:5000,http://127.0.0.1:5000")),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}

	// 16MB max file size by default
	maxSize := int64(16 * 1024 * 1024)
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
		}
		maxSize = parsed
	}
	cfg.MaxUploadSize = maxSize

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenAIAPIKey = apiKey

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAPIKey reads the OpenAI API key from the environment or a secret file.
// An empty result is not an error: the AI endpoints report the missing
// credential explicitly when called.
func loadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("OPENAI_API_KEY_FILE")
	if keyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL must not be empty")
	}
	if IsProduction() && cfg.SecretKey == defaultSecretKey {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
