package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port                string
	DatabaseURL         string // Postgres or MySQL URL; empty runs the API without persistence
	RedisAddr           string // Redis for request dedup; empty falls back to the in-memory store
	RedisPassword       string
	Version             string
	LogLevel            string
	OpenAIKey           string
	OpenAITimeout       int     // OpenAI API timeout in seconds
	SendGridAPIKey      string  // SendGrid API key for outbound action emails
	OutboundFrom        string  // From address for RSVP replies and cancellation requests
	PublicBaseURL       string  // Base URL clients reach this service on
	RunnerInterval      int     // Purchase runner tick interval in seconds
	PurchaseMaxAttempts int     // Execution attempts before a purchase is marked failed
	CheckoutFailureRate float64 // Simulated checkout failure rate, 0..1
	ChipCharWidth       float64 // Default per-character width for chip size estimates
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		Version:             getEnv("VERSION", "1.0.0"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAITimeout:       getEnvInt("OPENAI_TIMEOUT", 30),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		OutboundFrom:        getEnv("OUTBOUND_FROM", "actions@zero.example"),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		RunnerInterval:      getEnvInt("RUNNER_INTERVAL_SECONDS", 60),
		PurchaseMaxAttempts: getEnvInt("PURCHASE_MAX_ATTEMPTS", 3),
		CheckoutFailureRate: getEnvFloat("CHECKOUT_FAILURE_RATE", 0.2),
		ChipCharWidth:       getEnvFloat("CHIP_CHAR_WIDTH", 7.2),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float with a default fallback
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	// Configure zerolog to output JSON without newlines
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create logger with JSON output to stdout
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "zero-actions").
		Str("version", c.Version).
		Logger()

	// Set log level based on configuration
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
