package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "geoloc"
	configFile = "config.yaml"
)

// Config holds the persistent defaults for the CLI. Flags override whatever
// is loaded from disk.
type Config struct {
	// Language is the two-letter response language code, empty for the
	// service default.
	Language string `yaml:"language,omitempty"`

	// TimeoutSeconds bounds a blocking lookup. 0 means the built-in
	// default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// AutoSetTime applies the parsed UTC offset to the process time zone
	// after each successful lookup.
	AutoSetTime bool `yaml:"auto_set_time,omitempty"`

	// WithStatus requests the leading status field from the service.
	WithStatus bool `yaml:"with_status,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{}
}

// Timeout converts TimeoutSeconds to a duration, falling back to fallback
// when unset.
func (c Config) Timeout(fallback time.Duration) time.Duration {
	if c.TimeoutSeconds <= 0 {
		return fallback
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Dir returns the OS-appropriate configuration directory for the
// application:
//   - Linux: $XDG_CONFIG_HOME/geoloc or $HOME/.config/geoloc
//   - macOS: $HOME/.config/geoloc (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\geoloc
func Dir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// Path returns the full path to the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration file, returning defaults when none exists.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default location, creating the
// directory if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveTo(filepath.Join(dir, configFile), cfg)
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
