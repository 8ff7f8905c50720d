// Package config loads the YAML configuration shared by the CLI, the keypad
// and the HTTP service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	EnvConfigPath = "DESKCALC_CONFIG"
	EnvLogLevel   = "DESKCALC_LOG_LEVEL"
	EnvPort       = "DESKCALC_PORT"
)

// Logging output targets.
const (
	OutputStderr  = "stderr"
	OutputFile    = "file"
	OutputDiscard = "discard"
)

type LoggingConfig struct {
	Level      string `json:"level" yaml:"level"`
	Output     string `json:"output" yaml:"output"` // stderr, file, discard
	Filename   string `json:"filename" yaml:"filename"`
	MaxSize    int    `json:"max_size" yaml:"max_size"` // megabytes
	MaxAge     int    `json:"max_age" yaml:"max_age"`   // days
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	Compress   bool   `json:"compress" yaml:"compress"`
	IncludeSrc bool   `json:"include_src" yaml:"include_src"`
}

type DisplayConfig struct {
	Precision      int     `json:"precision" yaml:"precision"`
	SciThreshold   float64 `json:"sci_threshold" yaml:"sci_threshold"`
	SmallThreshold float64 `json:"small_threshold" yaml:"small_threshold"`
	Locale         string  `json:"locale" yaml:"locale"`
	MaxDigits      int     `json:"max_digits" yaml:"max_digits"`
}

type EvaluatorConfig struct {
	MaxLength int `json:"max_length" yaml:"max_length"`
}

type ServerConfig struct {
	Port         string   `json:"port" yaml:"port"`
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
	DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
}

// Config is the full application configuration.
type Config struct {
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Evaluator EvaluatorConfig `json:"evaluator" yaml:"evaluator"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:      "warn",
			Output:     OutputStderr,
			Filename:   filepath.Join(defaultStateDir(), "deskcalc.log"),
			MaxSize:    10,
			MaxAge:     28,
			MaxBackups: 3,
		},
		Display: DisplayConfig{
			Precision:      15,
			SciThreshold:   1e15,
			SmallThreshold: 1e-9,
			MaxDigits:      16,
		},
		Evaluator: EvaluatorConfig{
			MaxLength: 256,
		},
		Server: ServerConfig{
			Port:         "8080",
			AllowOrigins: []string{"*"},
		},
	}
}

// DefaultPath returns $DESKCALC_CONFIG, or config.yaml in the user config dir.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "deskcalc", "config.yaml")
	}
	return "deskcalc.yaml"
}

func defaultStateDir() string {
	if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
		return filepath.Join(stateHome, "deskcalc")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(homeDir, ".local", "state", "deskcalc")
}

// Load reads path over the defaults. A missing file yields the defaults.
// Unknown keys are rejected. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Logging.Level = level
	}
	if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
		c.Server.Port = port
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Output {
	case OutputStderr, OutputDiscard:
	case OutputFile:
		if c.Logging.Filename == "" {
			return errors.New("logging.filename is required when output is file")
		}
	default:
		return fmt.Errorf("logging.output %q is not one of stderr, file, discard", c.Logging.Output)
	}
	if c.Display.Precision < 1 || c.Display.Precision > 17 {
		return fmt.Errorf("display.precision must be between 1 and 17, got %d", c.Display.Precision)
	}
	if c.Display.SciThreshold <= 0 {
		return fmt.Errorf("display.sci_threshold must be positive, got %g", c.Display.SciThreshold)
	}
	if c.Display.SmallThreshold < 0 {
		return fmt.Errorf("display.small_threshold must not be negative, got %g", c.Display.SmallThreshold)
	}
	if c.Display.MaxDigits < 1 {
		return fmt.Errorf("display.max_digits must be positive, got %d", c.Display.MaxDigits)
	}
	if len(c.Server.AllowOrigins) == 0 {
		return errors.New("server.allow_origins must list at least one origin")
	}
	if c.Evaluator.MaxLength < 1 {
		return fmt.Errorf("evaluator.max_length must be positive, got %d", c.Evaluator.MaxLength)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration to path atomically, creating parent dirs.
func (c Config) Save(path string) error {
	b, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return writeAtomic(path, b, 0o600)
}
