package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// defaultEnvFiles are tried in order; values already set win, so .env.local
// overrides .env and the process environment overrides both.
var defaultEnvFiles = []string{".env.local", ".env"}

// loadEnvFiles loads every existing file from the list. Missing files are skipped.
func loadEnvFiles(logger *slog.Logger, files []string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			logger.Warn("Failed to load environment file", "file", f, "error", err)
			continue
		}
		logger.Debug("Loaded environment variables", "file", f)
	}
}
