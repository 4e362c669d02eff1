// Package config loads the predictor service configuration from YAML with defaults and
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
	} `yaml:"log"`
	Server struct {
		Addr            string        `yaml:"addr" default:":8080" validate:"required"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"5s" validate:"gt=0"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"5s" validate:"gt=0"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s" validate:"gt=0"`
		BodyLimit       string        `yaml:"body_limit" default:"4M" validate:"required"`
		MaxHorizon      int           `yaml:"max_horizon" default:"1048576" validate:"gt=0"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
	} `yaml:"metrics"`
	Plot struct {
		Interval time.Duration `yaml:"interval" default:"1m" validate:"gt=0"`
	} `yaml:"plot"`
}

// Default returns a configuration with every field set to its default.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads a YAML configuration file. A missing file or an empty path yields the defaults.
// Values are then overridden from the environment and validated.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PREDICTOR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PREDICTOR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PREDICTOR_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
