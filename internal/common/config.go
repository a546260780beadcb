package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Vision VisionConfig
	OCR    OCRConfig
}

// ServerConfig holds HTTP-server-related configuration.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// VisionConfig holds vision-AI-service-related configuration.
type VisionConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// OCRConfig holds the OCR and field-extraction service endpoints.
type OCRConfig struct {
	Endpoint         string
	APIKey           string
	FieldSvcEndpoint string
	Timeout          time.Duration
}

// LoadConfig loads configuration from environment variables. Vision/OCR
// endpoints may stay empty; the image tiers then report themselves as not
// configured and the fallback chain degrades accordingly.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("FIELDPOINT_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("FIELDPOINT_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxBodyBytes:    getEnvAsInt64("FIELDPOINT_MAX_BODY_BYTES", 16<<20),
		},
		Vision: VisionConfig{
			Endpoint: getEnv("VISION_API_URL", ""),
			APIKey:   getEnv("VISION_API_KEY", ""),
			Timeout:  getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
		},
		OCR: OCRConfig{
			Endpoint:         getEnv("OCR_API_URL", ""),
			APIKey:           getEnv("OCR_API_KEY", ""),
			FieldSvcEndpoint: getEnv("FIELDSVC_URL", ""),
			Timeout:          getEnvAsDuration("OCR_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "FIELDPOINT_ADDR is required", ErrInvalidInput)
	}
	if c.Vision.Endpoint != "" && c.Vision.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "VISION_API_KEY is required when VISION_API_URL is set", ErrInvalidInput)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
