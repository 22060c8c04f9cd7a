// Package config loads skinscan settings from a YAML file, a .env file and
// the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "skin-analyzer"
	configFile = "config.yaml"
)

// Environment variables that override file settings.
const (
	EnvCascade  = "SKINSCAN_CASCADE"
	EnvLogLevel = "SKINSCAN_LOG_LEVEL"
	EnvWorkers  = "SKINSCAN_WORKERS"
)

// Config holds the settings shared by every skinscan command.
type Config struct {
	CascadePath    string `yaml:"cascade_path"`
	LogLevel       string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogDevelopment bool   `yaml:"log_development"`
	Workers        int    `yaml:"workers" validate:"min=1,max=64"`
	Format         string `yaml:"format" validate:"oneof=text json"`
	AnnotateDir    string `yaml:"annotate_dir"`
	MinFaceSize    int    `yaml:"min_face_size" validate:"min=0"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  4,
		Format:   "text",
	}
}

// DefaultPath returns <UserConfigDir>/skin-analyzer/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, configFile)
}

// Load reads settings. An empty path means DefaultPath, and a missing default
// file is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCascade); v != "" {
		c.CascadePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
