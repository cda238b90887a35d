package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

const initHeader = "# sassdocbuilder configuration. Relative paths resolve against the project root.\n"

// Init writes the stock configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryValidation, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create configuration directory").Build()
		}
	}
	if err := os.WriteFile(configPath, append([]byte(initHeader), data...), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// Marshal renders c in the YAML file format accepted by Load.
func Marshal(c *Config) ([]byte, error) {
	data, err := yaml.Marshal(toFile(c))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "marshal configuration").Build()
	}
	return data, nil
}
