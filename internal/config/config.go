package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/pacs2mt/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the working
// directory or its parent, once per process. Variables already set in the
// environment are kept.
func LoadEnv(logger logging.Logger) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	envOnce.Do(func() {
		envFile := findEnvFile()
		if envFile == "" {
			logger.Debug("No .env file found, using environment variables")
			return
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
	})
}

func findEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// NewLogger builds the application logger from the logging section.
func NewLogger(cfg *Config) logging.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
}
