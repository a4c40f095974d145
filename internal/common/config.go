package common

import (
	"os"
	"strconv"
	"time"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Locador LocadorConfig
	Log     LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr          string
	MaxUploadSize int64
}

// GeminiConfig holds extraction-provider configuration
type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// LocadorConfig holds the lessor identity pre-printed on every contract.
// It is configuration, not a process-wide constant, so adding a second
// lessor is a deployment change rather than a code change.
type LocadorConfig struct {
	Nome          string
	Documento     string
	TipoDocumento string
	Telefone      string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          getEnv("HTTP_ADDR", ":8080"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_BYTES", 20<<20),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			BaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
		},
		Locador: LocadorConfig{
			Nome:          getEnv("LOCADOR_NOME", "CAIO ROBERTO DE SOUZA OLIVEIRA"),
			Documento:     getEnv("LOCADOR_DOCUMENTO", "461.227.128-92"),
			TipoDocumento: getEnv("LOCADOR_TIPO_DOCUMENTO", "CPF"),
			Telefone:      getEnv("LOCADOR_TELEFONE", "(15) 996017089"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// LocadorData returns the configured lessor identity as a schema section.
func (c *Config) LocadorData() schema.Locador {
	return schema.Locador{
		Nome:          c.Locador.Nome,
		Documento:     c.Locador.Documento,
		TipoDocumento: c.Locador.TipoDocumento,
		Telefone:      c.Locador.Telefone,
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Locador.Nome == "" || c.Locador.Documento == "" {
		return NewAppError("CONFIG_ERROR", "lessor identity is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
