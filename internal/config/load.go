package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:   1,
		Dir:       ".",
		Algorithm: "sha256",
	}
}

// Load reads and validates a .nab.yaml configuration file. A missing file
// surfaces the underlying not-exist error so callers can fall back to
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = "sha256"
	}
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	switch cfg.Algorithm {
	case "sha256", "sha1", "md5", "blake3":
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid algorithm '%s' — must be one of: sha256, sha1, md5, blake3", cfg.Algorithm))
	}

	if cfg.MaxSize < 0 {
		errs = append(errs, fmt.Sprintf("max_size must not be negative, got %d", cfg.MaxSize))
	}

	if cfg.Root != "" && cfg.Action.MoveTo == "" {
		errs = append(errs, "'root' has no effect without 'action.move_to'")
	}

	return errs
}
