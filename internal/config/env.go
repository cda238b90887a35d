package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// Environment variables that override configuration file values.
const (
	EnvSource   = "SASSDOC_SOURCE"
	EnvDest     = "SASSDOC_DEST"
	EnvTheme    = "SASSDOC_THEME"
	EnvBasePath = "SASSDOC_BASE_PATH"
	EnvVerbose  = "SASSDOC_VERBOSE"
	EnvStrict   = "SASSDOC_STRICT"
	EnvBinary   = "SASSDOC_BIN"
)

// loadEnvFiles loads .env.local and then .env from dir. godotenv never
// overrides a variable that is already set, so values from .env.local win
// over .env and both lose to the process environment.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", "path", path, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", path)
	}
}

// ApplyEnv overlays SASSDOC_* environment variables onto c.
func ApplyEnv(c *Config) error {
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvSource, &c.Source},
		{EnvDest, &c.Dest},
		{EnvTheme, &c.Theme},
		{EnvBasePath, &c.BasePath},
		{EnvBinary, &c.Engine.Binary},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.dst = v
		}
	}

	flags := []struct {
		env string
		dst *bool
	}{
		{EnvVerbose, &c.Verbose},
		{EnvStrict, &c.Strict},
	}
	for _, f := range flags {
		raw, ok := os.LookupEnv(f.env)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return ferrors.ValidationError("invalid boolean environment override").
				WithContext("field", f.env).
				WithCause(err).
				Build()
		}
		*f.dst = v
	}
	return nil
}
