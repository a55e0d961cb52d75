// Package config holds the CLI configuration. Settings live in a TOML
// file with a fixed, enumerated field set: unknown keys are rejected
// and values are only ever parsed, never evaluated.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "togglcon"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Config represents the CLI configuration.
type Config struct {
	// Email is the account email, sent as the user_agent on report calls.
	Email string `toml:"email"`
	// APIKey is the Toggl API token.
	APIKey string `toml:"api_key"`
	// WorkspaceID is the numeric Toggl workspace to report on.
	WorkspaceID int `toml:"workspace_id"`

	// Tracking lists projects whose hour budgets the track command
	// reports on. Optional.
	Tracking []TrackedProject `toml:"tracking"`
}

// TrackedProject is one hours-budget line for the track command.
type TrackedProject struct {
	// Project is matched as a substring of entry project names.
	Project string `toml:"project"`
	// HoursAvailable is the quoted hour budget for the project.
	HoursAvailable float64 `toml:"hours_available"`
	// DueDate is the project due date in DD/MM/YY form.
	DueDate string `toml:"due_date"`
}

// Default returns an empty configuration; every credential field must
// be filled in by setup before the CLI can talk to the API.
func Default() Config {
	return Config{}
}

// Path returns the path to the config file, creating the config
// directory if it doesn't exist. Uses os.UserConfigDir() for a
// cross-platform XDG-compliant location.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path. Keys outside the
// enumerated schema are an error rather than silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unrecognized setting %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Save writes the config file at path, readable only by the user
// since it carries the API key.
func Save(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks that the credential fields needed for API calls are
// present.
func (c Config) Validate() error {
	if c.Email == "" {
		return errors.New("email is not set")
	}
	if c.APIKey == "" {
		return errors.New("api_key is not set")
	}
	if c.WorkspaceID <= 0 {
		return errors.New("workspace_id is not set")
	}
	return nil
}
