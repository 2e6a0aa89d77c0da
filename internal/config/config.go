// Package config loads the CLI's capacity limits from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/utmatrix/utmatrix"
	"github.com/katalvlaran/utmatrix/vector"
)

// ErrInvalidConfig is returned for limits or element kinds the library cannot honor.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Element selects the numeric type the CLI instantiates containers with.
type Element string

const (
	ElementInt   Element = "int"
	ElementFloat Element = "float"
)

// Config mirrors the YAML document:
//
//	max_vector_size: 1024
//	max_matrix_size: 64
//	element: float
type Config struct {
	MaxVectorSize int     `yaml:"max_vector_size"`
	MaxMatrixSize int     `yaml:"max_matrix_size"`
	Element       Element `yaml:"element"`
}

// Default returns the library's own capacity constants with int elements.
func Default() Config {
	return Config{
		MaxVectorSize: vector.MaxVectorSize,
		MaxMatrixSize: utmatrix.MaxMatrixSize,
		Element:       ElementInt,
	}
}

// Load reads path over Default. An empty path or a missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b)
}

// Parse decodes a YAML document over Default and validates it.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects negative limits and unknown element kinds.
func (c Config) Validate() error {
	if c.MaxVectorSize < 0 {
		return fmt.Errorf("max_vector_size %d: %w", c.MaxVectorSize, ErrInvalidConfig)
	}
	if c.MaxMatrixSize < 0 {
		return fmt.Errorf("max_matrix_size %d: %w", c.MaxMatrixSize, ErrInvalidConfig)
	}
	switch c.Element {
	case ElementInt, ElementFloat:
	default:
		return fmt.Errorf("element %q: %w", c.Element, ErrInvalidConfig)
	}

	return nil
}

// VectorOptions returns the options that apply the configured vector cap.
func (c Config) VectorOptions() []vector.Option {
	return []vector.Option{vector.WithMaxSize(c.MaxVectorSize)}
}

// MatrixOptions returns the options that apply the configured matrix cap.
func (c Config) MatrixOptions() []utmatrix.Option {
	return []utmatrix.Option{utmatrix.WithMaxSide(c.MaxMatrixSize)}
}
