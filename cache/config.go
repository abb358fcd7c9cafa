package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the cache geometry parameters.
type Config struct {
	// SizeKB is the total cache capacity in kibibytes.
	// Must be a power of two. Default: 32.
	SizeKB int `json:"size_kb"`

	// Associativity is the number of ways per set.
	// Must be a power of two. Default: 8.
	Associativity int `json:"associativity"`

	// LineSize is the cache line size in bytes.
	// Must be a power of two. Default: 64.
	LineSize int `json:"line_size"`
}

// DefaultConfig returns a Config with default geometry values
// (32KB, 8-way, 64B lines).
func DefaultConfig() Config {
	return Config{
		SizeKB:        32,
		Associativity: 8,
		LineSize:      64,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse cache config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache config file: %w", err)
	}

	return nil
}

// Validate checks that the geometry is usable: every parameter must be a
// positive power of two and the cache must hold at least one set.
func (c *Config) Validate() error {
	if err := validatePowerOfTwo("size_kb", c.SizeKB); err != nil {
		return err
	}
	if err := validatePowerOfTwo("associativity", c.Associativity); err != nil {
		return err
	}
	if err := validatePowerOfTwo("line_size", c.LineSize); err != nil {
		return err
	}

	if c.SizeKB*1024 < c.Associativity*c.LineSize {
		return fmt.Errorf(
			"cache size %dKB is smaller than one set (%d ways x %dB lines)",
			c.SizeKB, c.Associativity, c.LineSize)
	}

	return nil
}

func validatePowerOfTwo(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0, got %d", name, v)
	}
	if v&(v-1) != 0 {
		return fmt.Errorf("%s must be a power of two, got %d", name, v)
	}
	return nil
}
