package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv copies variables from the given .env file into the process
// environment. Variables already set are left untouched and a missing file is
// not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// DotEnvPath returns ENV_FILE, or ".env" when it is unset. It is read before
// viper exists, hence the explicit getenv.
func DotEnvPath(getenv func(string) string) string {
	if v := strings.TrimSpace(getenv("ENV_FILE")); v != "" {
		return v
	}
	return ".env"
}

// ForceColor reports whether FORCE_COLOR asks for coloured output even when
// stdout is not a terminal.
func ForceColor(getenv func(string) string) bool {
	switch strings.ToLower(strings.TrimSpace(getenv("FORCE_COLOR"))) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
