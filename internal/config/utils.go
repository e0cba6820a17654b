package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureConfigFile creates the settings directory and an empty settings
// file when missing. It does not validate the settings content.
func EnsureConfigFile(homeDir string) error {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// EnsureConfigExists creates the settings file if missing, then verifies
// the loaded settings carry the required values for the start page to
// operate.
func EnsureConfigExists(homeDir string) error {
	if err := EnsureConfigFile(homeDir); err != nil {
		return err
	}

	s, err := Load(homeDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if strings.TrimSpace(s.VaultDir) == "" {
		return &ConfigInitError{
			msg: `required config variable "VaultDir" is not set`,
		}
	}

	return nil
}
