package app

import (
	"os"
	"strconv"
	"time"
)

// Database drivers accepted in VOTE_DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer         string // Issuer claim stamped into access tokens (default: ballotbox)
	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseDriver string        // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./vote.db)
	DatabaseURL    string        // Required for postgres: connection string
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SigningKeyFile string        // Optional: PKCS8 Ed25519 key; created if missing. Empty means an ephemeral key
	TokenTTL       time.Duration // Optional: access token lifetime (default: 1h)
	CloserInterval time.Duration // Optional: how often elapsed elections are closed (default: 0, disabled)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("VOTE_ISSUER", "ballotbox"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseDriver: getEnvOrDefault("VOTE_DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("VOTE_DATABASE_FILE", "vote.db"),
		DatabaseURL:    os.Getenv("VOTE_DATABASE_URL"),
		PepperFile:     getEnvOrDefault("VOTE_PEPPER_FILE", "pepper"),
		SigningKeyFile: os.Getenv("VOTE_SIGNING_KEY_FILE"),
		TokenTTL:       getEnvDurationOrDefault("VOTE_TOKEN_TTL", time.Hour),
		CloserInterval: getEnvDurationOrDefault("VOTE_CLOSER_INTERVAL", 0),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
