package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"mealplan/internal/failure"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither --config nor MEALPLAN_CONFIG is set.
const DefaultPath = "mealplan.yaml"

// Config holds all mealplan configuration.
type Config struct {
	Name string `yaml:"name"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Rendering of structured command output
	Output OutputConfig `yaml:"output"`
}

// OutputConfig configures how plan and validate print documents.
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "mealplan",
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			DebugMode: false,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// ResolvePath picks the config file: the explicit flag value, then
// MEALPLAN_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("MEALPLAN_CONFIG"); env != "" {
		return env
	}
	return DefaultPath
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left alone; a missing file is not
// an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return failure.Wrap(failure.KindConfig, err, fmt.Sprintf("failed to load %s", filepath.Base(path)))
	}
	return nil
}

// Load loads configuration from a YAML file, applies environment overrides
// and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, failure.Wrap(failure.KindConfig, err, "failed to read config")
	}
	if err == nil {
		if err := decodeStrict(data, cfg); err != nil {
			return nil, failure.Wrap(failure.KindConfig, err, "failed to parse config")
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeStrict rejects keys the Config struct does not declare.
func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies MEALPLAN_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("MEALPLAN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("MEALPLAN_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if debug := os.Getenv("MEALPLAN_DEBUG"); debug != "" {
		on, err := strconv.ParseBool(debug)
		if err != nil {
			return failure.Config(fmt.Sprintf("invalid MEALPLAN_DEBUG value %q", debug))
		}
		c.Logging.DebugMode = on
	}
	if format := os.Getenv("MEALPLAN_OUTPUT_FORMAT"); format != "" {
		c.Output.Format = format
	}
	return nil
}

var (
	// ValidLogLevels lists accepted logging.level values.
	ValidLogLevels = []string{"debug", "info", "warn", "error"}
	// ValidLogFormats lists accepted logging.format values.
	ValidLogFormats = []string{"json", "console"}
	// ValidOutputFormats lists accepted output.format values.
	ValidOutputFormats = []string{"json", "yaml"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !oneOf(c.Logging.Level, ValidLogLevels) {
		return failure.Config(fmt.Sprintf("invalid logging.level: %q (valid: %v)", c.Logging.Level, ValidLogLevels))
	}
	if !oneOf(c.Logging.Format, ValidLogFormats) {
		return failure.Config(fmt.Sprintf("invalid logging.format: %q (valid: %v)", c.Logging.Format, ValidLogFormats))
	}
	if !oneOf(c.Output.Format, ValidOutputFormats) {
		return failure.Config(fmt.Sprintf("invalid output.format: %q (valid: %v)", c.Output.Format, ValidOutputFormats))
	}
	return nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
