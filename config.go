package strvec

import (
	"fmt"

	"github.com/npillmayer/strvec/arena"
)

// Config configures the storage of a vector.
//
// A zero Config selects the defaults, which is what a zero Vec uses as well.
type Config struct {
	// PageSize is the capacity of the first arena page in bytes.
	PageSize int
	// MaxPageSize caps the capacities of later pages, which double in size.
	// Strings longer than MaxPageSize-1 bytes are allocated on the side.
	MaxPageSize int
	// Capacity is the number of elements to reserve room for.
	Capacity int
}

func (cfg Config) arenaConfig() arena.Config {
	return arena.Config{
		PageSize:    cfg.PageSize,
		MaxPageSize: cfg.MaxPageSize,
	}
}

func (cfg Config) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	if err := cfg.arenaConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
