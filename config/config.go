package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultLogLevel = "info"

	EnvBaseURL  = "AGENT0_BASE_URL"
	EnvLogLevel = "AGENT0_TRAY_LOG_LEVEL"
	EnvLogFile  = "AGENT0_TRAY_LOG_FILE"
	EnvHotkey   = "AGENT0_TRAY_HOTKEY"
)

type Config struct {
	BaseURL  string
	LogLevel string
	LogFile  string
	Hotkey   string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		BaseURL:  GetEnv(EnvBaseURL, DefaultBaseURL),
		LogLevel: strings.ToLower(GetEnv(EnvLogLevel, DefaultLogLevel)),
		LogFile:  GetEnv(EnvLogFile, ""),
		Hotkey:   GetEnv(EnvHotkey, ""),
	}

	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

// GetEnv returns the trimmed value of key, or fallback when key is unset.
// A key set to an empty value stays empty, matching godotenv, which never
// overrides a key that is already present.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvBaseURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", EnvBaseURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", EnvBaseURL, raw)
	}
	return nil
}
