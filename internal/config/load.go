package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor infers the syntax from the file extension; YAML is the fallback.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads a configuration file, overlays it onto Default(), applies .env
// and environment overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	loadEnvFiles(filepath.Dir(configPath))

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NewError(ferrors.CategoryNotFound, "configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read configuration file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data, FormatFor(configPath))
	if err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return nil, c.WithContext("path", configPath)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default() when the file
// does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Configuration file not found, using defaults", "path", configPath)
		loadEnvFiles(filepath.Dir(configPath))
		cfg := Default()
		if err := ApplyEnv(cfg); err != nil {
			return nil, err
		}
		applyDefaults(cfg)
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(configPath)
}

// Parse decodes configuration bytes in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	// Expand environment variables in the file content
	data = []byte(os.ExpandEnv(string(data)))

	var f fileConfig
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			if dup := tomlDuplicateError(err); dup != nil {
				return nil, dup
			}
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "decode TOML configuration").Build()
		}
	case FormatJSON:
		if err := checkJSONDuplicates(data); err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "decode JSON configuration").Build()
		}
	default:
		if err := checkYAMLDuplicates(data); err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "decode YAML configuration").Build()
		}
	}

	cfg := Default()
	f.applyTo(cfg)
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
