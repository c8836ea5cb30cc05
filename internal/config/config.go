package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ValidFormats lists the accepted values for the format setting
var ValidFormats = []string{"text", "json", "yaml"}

// Config is the user configuration
type Config struct {
	// Format is the default output format; empty means pick by terminal
	Format string `toml:"format"`
	// Abbrev shortens printed hashes; zero prints full hashes
	Abbrev  int       `toml:"abbrev"`
	LogFile string    `toml:"log_file"`
	Log     LogConfig `toml:"log"`
}

// LogConfig controls log file rotation
type LogConfig struct {
	MaxSize    int `toml:"max_size"` // megabytes
	MaxBackups int `toml:"max_backups"`
	MaxAge     int `toml:"max_age"` // days
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Log: LogConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// Path returns the user config location, honouring XGIT_CONFIG
func Path() (string, error) {
	if p := os.Getenv("XGIT_CONFIG"); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "xgit", "config.toml"), nil
}

// Load reads the user config.
// Returns Default() if the file doesn't exist; XGIT_LOG_FILE overrides log_file.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default()), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

// LoadFile reads a config file, falling back to Default() when it is missing
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.LogFile, err = expandPath(cfg.LogFile); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks enum and range settings
func (c Config) Validate() error {
	if err := validateEnum(c.Format, "format", ValidFormats); err != nil {
		return err
	}
	return validateAbbrev(c.Abbrev)
}

func validateAbbrev(n int) error {
	if n < 0 || n > 40 {
		return fmt.Errorf("invalid abbrev %d: must be between 0 and 40", n)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if p := os.Getenv("XGIT_LOG_FILE"); p != "" {
		if expanded, err := expandPath(p); err == nil {
			cfg.LogFile = expanded
		}
	}
	return cfg
}

func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be one of %s", field, value, strings.Join(allowed, ", "))
	}
	return nil
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
