package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the API key, in lookup order
const (
	EnvAPIKey         = "GOOGLE_API_KEY"
	EnvAPIKeyFallback = "GEMINI_API_KEY"
)

// LoadEnv loads .env from the working directory, then from the config directory.
// Variables already set win; missing files are ignored.
func LoadEnv() error {
	files := []string{".env"}
	if dir, err := GetConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, ".env"))
	}
	return loadEnvFiles(files...)
}

func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				// environment variables may be supplied externally
				continue
			}
			return err
		}
	}
	return nil
}

// APIKey returns the Gemini API key from the environment, or ""
func APIKey() string {
	for _, name := range []string{EnvAPIKey, EnvAPIKeyFallback} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
