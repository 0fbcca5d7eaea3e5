// Package config holds the runtime configuration of the airroutes CLI.
//
// Values come from defaults, then an optional YAML file, then command-line
// flags (applied by the caller). The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultDataPath  = "routes.dat"
	defaultLogLevel  = "warn"
	defaultLogFormat = "auto"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig describes the route dataset.
type DataConfig struct {
	// Path of the route file. Read once at startup.
	Path string `yaml:"path" validate:"required"`
	// Strict logs the reason for every rejected line at debug level.
	Strict bool `yaml:"strict"`
}

// QueryConfig narrows every shortest-path query.
type QueryConfig struct {
	// MaxHops rejects itineraries with more routes than this. 0 is no limit.
	MaxHops int `yaml:"max_hops" validate:"gte=0"`
	// Avoid lists airports no itinerary may pass through.
	Avoid []string `yaml:"avoid" validate:"dive,required"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Data: DataConfig{Path: defaultDataPath},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
