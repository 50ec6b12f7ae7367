package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	SaveFile         string // path of the XML saved game
	SaveDatabaseFile string // path of the SQLite mirror
	UseDatabase      bool   // mirror saves into SQLite
	LogLevel         string
	LogFormat        string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		SaveFile:         getEnv("SAVE_FILE", DefaultSaveFile),
		SaveDatabaseFile: getEnv("SAVE_DB_FILE", DefaultSaveDatabaseFile),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	useDatabaseStr := getEnv("USE_DATABASE", "false")
	useDatabase, err := strconv.ParseBool(useDatabaseStr)
	if err != nil {
		return nil, fmt.Errorf("invalid USE_DATABASE value: %w", err)
	}
	cfg.UseDatabase = useDatabase

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
