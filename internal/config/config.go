// Package config loads techsphere settings from a YAML file, a .env file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// HomeEnv overrides the ~/.techsphere base directory (for testing).
	HomeEnv = "TECHSPHERE_HOME"
	// DefaultHomeBase is the default base directory under the user's home.
	DefaultHomeBase = ".techsphere"
	// FileName is the config file name inside the base directory.
	FileName = "config.yaml"

	LogFileEnv     = "TECHSPHERE_LOG_FILE"
	LogLevelEnv    = "TECHSPHERE_LOG_LEVEL"
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Log levels accepted in config.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config is the full application configuration.
type Config struct {
	UI        UIConfig        `yaml:"ui"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// UIConfig controls the terminal program.
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	Mouse     bool `yaml:"mouse"`
}

// LogConfig controls logging. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Normalize lower-cases the level and fills in the default.
func (c *LogConfig) Normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Level == "" {
		c.Level = LevelInfo
	}
}

// Validate validates the log configuration. Levels are matched exactly;
// call Normalize first to accept mixed case.
func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
	)
}

// TelemetryConfig controls OpenTelemetry export. Tracing is enabled only
// when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Enabled reports whether spans should be exported.
func (c *TelemetryConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Validate validates the telemetry configuration.
func (c TelemetryConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ServiceName, validation.Required),
	)
}

// Normalize canonicalizes values that accept more than one spelling.
func (c *Config) Normalize() {
	c.Log.Normalize()
}

// Validate validates the configuration without changing it.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}

// NewDefault returns a Config with default values.
func NewDefault() *Config {
	return &Config{
		UI: UIConfig{
			AltScreen: true,
			Mouse:     true,
		},
		Log: LogConfig{
			Level: LevelInfo,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "techsphere",
		},
	}
}

// DefaultPath returns $TECHSPHERE_HOME/config.yaml, or
// ~/.techsphere/config.yaml when the variable is unset.
func DefaultPath() (string, error) {
	base := os.Getenv(HomeEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, DefaultHomeBase)
	}
	return filepath.Join(base, FileName), nil
}

// Load builds the configuration.
//
// A .env file in the working directory is loaded first, without overriding
// variables already set. If path is empty the default path is used and a
// missing file yields defaults; an explicit path must exist. ${VAR}
// references in string values are expanded (a bare $ is kept as is), then
// environment overrides are applied and the result is normalized and
// validated.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := NewDefault()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		cfg.expandEnv()
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} in string values with the variable's value.
// Unset variables expand to "".
func (c *Config) expandEnv() {
	for _, s := range []*string{&c.Log.Level, &c.Log.File, &c.Telemetry.Endpoint, &c.Telemetry.ServiceName} {
		*s = envRef.ReplaceAllStringFunc(*s, func(ref string) string {
			return os.Getenv(ref[2 : len(ref)-1])
		})
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(LogFileEnv); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EndpointEnv); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv(ServiceNameEnv); v != "" {
		c.Telemetry.ServiceName = v
	}
}
