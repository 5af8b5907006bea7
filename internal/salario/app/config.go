package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

type Config struct {
	APIURL      string        // Base URL of the clientes resource (default: http://localhost:4000/api/clientes)
	HTTPTimeout time.Duration // Per-request timeout (default: 10s)
	MaxRPS      float64       // Optional: cap on outgoing requests per second (default: 0, unlimited)
	Env         string        // Environment (dev, staging, prod) (default: prod)
	LogLevel    string        // Log level (debug, info, warn, error) (default: info)
	LogFormat   string        // Log format (json, text) (default: json)
	LogFile     string        // Optional: log destination; the TUI discards logs when unset
}

// LoadConfig reads the configuration from the environment. Load a .env file
// first if one should apply.
func LoadConfig() Config {
	return Config{
		APIURL:      getEnvOrDefault("SALARIO_API_URL", clientesdk.DefaultBaseURL),
		HTTPTimeout: getEnvDurationOrDefault("SALARIO_HTTP_TIMEOUT", clientesdk.DefaultTimeout),
		MaxRPS:      getEnvFloatOrDefault("SALARIO_MAX_RPS", 0),
		Env:         getEnvOrDefault("ENV", "prod"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:     os.Getenv("LOG_FILE"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "5s", "1m")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
