// Package config loads the nibble command's YAML configuration.
//
//	buffer:
//	  chunk_size: 4096
//	  max_size: 1048576
//	log:
//	  verbosity: 1
//	  file: /tmp/nibble.log
//	metrics: true
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/nibble/buffer"
)

const DefaultChunkSize = buffer.DefaultChunkSize

type Config struct {
	Buffer  BufferConfig `yaml:"buffer"`
	Log     LogConfig    `yaml:"log"`
	Metrics bool         `yaml:"metrics"`
}

type BufferConfig struct {
	// ChunkSize is the minimum number of bytes requested per read.
	ChunkSize int `yaml:"chunk_size"`

	// MaxSize limits the unconsumed bytes held while parsing one rule.
	// Zero means no limit.
	MaxSize int `yaml:"max_size"`
}

type LogConfig struct {
	// Verbosity is passed to commonlog: 0 is quiet, 1 info, 2 debug.
	Verbosity int `yaml:"verbosity"`

	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// LoadConfig reads the YAML file at path, applies defaults and validates
// the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func ApplyDefaults(cfg *Config) {
	if cfg.Buffer.ChunkSize == 0 {
		cfg.Buffer.ChunkSize = DefaultChunkSize
	}
}

// FieldError is a validation error for one configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found by Validate.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Buffer.ChunkSize < 1 {
		errs = append(errs, FieldError{"buffer.chunk_size", "must be positive"})
	}
	if cfg.Buffer.MaxSize < 0 {
		errs = append(errs, FieldError{"buffer.max_size", "must not be negative"})
	}
	if cfg.Buffer.MaxSize > 0 && cfg.Buffer.MaxSize < cfg.Buffer.ChunkSize {
		errs = append(errs, FieldError{"buffer.max_size", "must be at least buffer.chunk_size"})
	}
	if cfg.Log.Verbosity < 0 {
		errs = append(errs, FieldError{"log.verbosity", "must not be negative"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// BufferOptions converts the buffer settings into options for
// buffer.NewSource.
func (cfg *Config) BufferOptions() []buffer.Option {
	return []buffer.Option{
		buffer.WithChunkSize(cfg.Buffer.ChunkSize),
		buffer.WithMaxBufferSize(cfg.Buffer.MaxSize),
	}
}
