package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port             string
	MongoDBURI       string
	MongoDBName      string
	JWTSecret        string
	SessionTTL       time.Duration
	GoogleClientID   string
	ResendAPIKey     string
	EmailFrom        string
	ContactEmail     string
	ClientURL        string
	APIURL           string
	Environment      string
	LogLevel         string
	DefaultListing   string
	DefaultAvatar    string
	CloudinaryName   string
	CloudinaryKey    string
	CloudinarySecret string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnvWithDefault("PORT", "8080"),
		MongoDBURI:       os.Getenv("MONGODB_URI"),
		MongoDBName:      getEnvWithDefault("MONGODB_DB", "aqardot"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GoogleClientID:   os.Getenv("GOOGLE_CLIENT_ID"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFrom:        getEnvWithDefault("EMAIL_FROM", "AqarDot <no-reply@aqardot.com>"),
		ContactEmail:     getEnvWithDefault("CONTACT_EMAIL", "contact@aqardot.com"),
		ClientURL:        getEnvWithDefault("CLIENT_URL", "http://localhost:3000"),
		APIURL:           getEnvWithDefault("API_URL", "http://localhost:8080"),
		Environment:      getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		DefaultListing:   getEnvWithDefault("DEFAULT_LISTING_IMAGE_URL", "/placeholder.jpg"),
		DefaultAvatar:    getEnvWithDefault("DEFAULT_AVATAR_URL", "/default-avatar.png"),
		CloudinaryName:   os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	ttl, err := time.ParseDuration(getEnvWithDefault("ACCESS_TOKEN_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %v", err)
	}
	cfg.SessionTTL = ttl

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
