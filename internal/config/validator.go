package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

var validLogFormats = []string{"text", "json"}

// validate checks the loaded values against the sets the application accepts.
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.SaveFile) == "" {
		return fmt.Errorf("SAVE_FILE must not be empty")
	}
	if cfg.UseDatabase && strings.TrimSpace(cfg.SaveDatabaseFile) == "" {
		return fmt.Errorf("SAVE_DB_FILE must not be empty when USE_DATABASE is set")
	}
	if !contains(validLogLevels, strings.ToUpper(cfg.LogLevel)) {
		return fmt.Errorf("invalid LOG_LEVEL %q: expected one of %s",
			cfg.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !contains(validLogFormats, strings.ToLower(cfg.LogFormat)) {
		return fmt.Errorf("invalid LOG_FORMAT %q: expected one of %s",
			cfg.LogFormat, strings.Join(validLogFormats, ", "))
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
