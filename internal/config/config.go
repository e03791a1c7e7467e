package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/viertel-sieben/internal/logger"
)

// Config holds the face settings shared by all commands.
type Config struct {
	// Extended enables the canonical hour line and the Angelus alert.
	Extended bool `yaml:"extended"`
	// LogLevel is the minimum zap level, e.g. "info" or "debug".
	LogLevel string `yaml:"log_level"`
	// Location is the IANA zone the wall clock is read in, "Local" by default.
	Location string `yaml:"location"`
	// Bell rings the terminal bell twice for the Angelus.
	Bell bool `yaml:"bell"`
}

const (
	// DefaultConfigFilename is the default filename for face settings.
	DefaultConfigFilename = "viertel-sieben.yaml"

	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	// DefaultLocation is used when location is empty.
	DefaultLocation = "Local"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when log_level is not a zap level.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings used when no file exists at the default path.
// The extended face is on by default.
func Default() *Config {
	return &Config{
		Extended: true,
		LogLevel: DefaultLogLevel,
		Location: DefaultLocation,
		Bell:     true,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path means the default filename; if that file is missing the
// defaults are returned. A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and checks the level and the location.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%q: %w", settings.LogLevel, errUnknownLogLevel)
	}

	if settings.Location == "" {
		settings.Location = DefaultLocation
	}

	if _, err := time.LoadLocation(settings.Location); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	return nil
}

// TimeLocation resolves Location. It is only valid after Validate.
func (c *Config) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}

	return loc
}
