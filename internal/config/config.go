// Package config loads and validates the vaultmd configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/vaultmd/vaultmd/internal/notepath"
)

// envNotesRoot overrides the configured notes root when set. A .env file
// in the working directory is honored via godotenv autoload in main.
const envNotesRoot = "VAULTMD_NOTES_ROOT"

// envConfigPath overrides the config file location.
const envConfigPath = "VAULTMD_CONFIG"

// Config is the single recognized configuration record.
type Config struct {
	NotesRoot string `yaml:"notes_root"`
}

// Default returns the configuration used when no file exists: a
// home-relative notes directory.
func Default() Config {
	return Config{NotesRoot: "~/Notes"}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.NotesRoot, validation.Required),
	)
}

// Root returns the expanded notes root path.
func (c Config) Root() string {
	return notepath.ExpandRoot(c.NotesRoot)
}

// EnsureRoot re-validates the configuration and creates the notes root
// directory when absent. Safe to call repeatedly.
func (c Config) EnsureRoot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	root := c.Root()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create notes root %s: %w", root, err)
	}
	return nil
}

// Load reads the configuration from path, falling back to defaults when
// the file does not exist. An empty path means DefaultPath. Environment
// variables inside the file are expanded before parsing, and
// VAULTMD_NOTES_ROOT overrides the file afterwards.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file: defaults plus env override below.
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if root := os.Getenv(envNotesRoot); root != "" {
		cfg.NotesRoot = root
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the config file location.
//
// Resolution:
//   - $VAULTMD_CONFIG if set
//   - $XDG_CONFIG_HOME/vaultmd/config.yaml if set
//   - ~/.config/vaultmd/config.yaml otherwise
func DefaultPath() string {
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vaultmd", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vaultmd", "config.yaml")
}
