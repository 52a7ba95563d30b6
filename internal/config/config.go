// Package config provides Viper-based configuration loading for the sheet tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override file values,
// e.g. GANGSHEET_LOGGING_LEVEL.
const EnvPrefix = "GANGSHEET"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig selects the reference tables.
type ContentConfig struct {
	// Dir is a directory holding armour.yaml, weapon_traits.yaml, skills.yaml
	// and equipment.yaml. Empty selects the tables embedded in the binary.
	Dir string `mapstructure:"dir"`
}

// Embedded reports whether the built-in tables are selected.
func (c ContentConfig) Embedded() bool {
	return c.Dir == ""
}

// SheetConfig holds sheet output settings.
type SheetConfig struct {
	// Output is the rendering of a derived sheet: "json" or "text".
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Sheet   SheetConfig   `mapstructure:"sheet"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSheet(c.Sheet); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.Embedded() {
		return nil
	}
	info, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("content.dir %q: %w", c.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content.dir %q is not a directory", c.Dir)
	}
	return nil
}

func validateSheet(s SheetConfig) error {
	validOutputs := map[string]bool{"json": true, "text": true}
	if !validOutputs[s.Output] {
		return fmt.Errorf("sheet.output must be one of [json, text], got %q", s.Output)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Precondition: path must be empty or a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := NewViperFromFile(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// NewViperFromFile returns NewViper with the YAML file at path read in, so
// callers can layer further overrides before LoadFromViper. An empty path
// reads no file.
//
// Postcondition: Returns a non-nil *viper.Viper or a non-nil error.
func NewViperFromFile(path string) (*viper.Viper, error) {
	v := NewViper()
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return v, nil
}

// NewViper returns a Viper instance with the GANGSHEET_ environment overrides
// and every default registered.
//
// Postcondition: Returns a non-nil *viper.Viper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.dir", "")

	v.SetDefault("sheet.output", "text")
}
