package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the daemon configuration
type Config struct {
	Host         string
	Port         int
	LogLevel     string
	LogFormat    string
	Environment  string
	DBPath       string
	TiersPath    string
	AppNamesPath string
	// UseFakeBridge serves the development app catalog instead of ErrUnsupported
	// when no native bridge is attached.
	UseFakeBridge bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Host:         getEnv("HOST", DefaultHost),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		Environment:  getEnv("ENVIRONMENT", "production"),
		DBPath:       getEnv("DB_PATH", DefaultDBPath),
		TiersPath:    getEnv("TIERS_CONFIG", ""),
		AppNamesPath: getEnv("APP_NAMES_CONFIG", ConfigPathAppNames),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	fake, err := strconv.ParseBool(getEnv("USE_FAKE_BRIDGE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid USE_FAKE_BRIDGE value: %w", err)
	}
	cfg.UseFakeBridge = fake

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects configurations the daemon must not start with. The API
// carries no auth of its own, so it stays bound to loopback.
func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if !loopbackHosts[c.Host] {
		return fmt.Errorf("HOST must be a loopback address, got %q", c.Host)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
