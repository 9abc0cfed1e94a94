package config

import "fmt"

// Config holds the settings for the namedvec command-line tool.
type Config struct {
	// Delimiter separates a record's name from its value on each dataset
	// line.
	Delimiter string `toml:"delimiter" mapstructure:"delimiter"`

	// Reserve is the record capacity requested before loading a dataset.
	// Zero disables pre-allocation.
	Reserve int `toml:"reserve" mapstructure:"reserve"`

	// MaxShown caps how many records the list command prints. Zero means
	// no cap.
	MaxShown int `toml:"max_shown" mapstructure:"max_shown"`

	// CacheSize is the size of the lookup memoization cache used by the
	// get command.
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`
}

// Validate checks the configuration for values the commands cannot work
// with.
func Validate(cfg *Config) error {
	if cfg.Delimiter == "" {
		return fmt.Errorf("delimiter cannot be empty")
	}
	if cfg.Reserve < 0 {
		return fmt.Errorf("reserve cannot be negative: %d", cfg.Reserve)
	}
	if cfg.MaxShown < 0 {
		return fmt.Errorf("max_shown cannot be negative: %d", cfg.MaxShown)
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive: %d", cfg.CacheSize)
	}
	return nil
}
