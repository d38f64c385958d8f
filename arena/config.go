package arena

import "fmt"

const (
	// DefaultPageSize is the capacity of the first page of an arena.
	DefaultPageSize = 256
	// DefaultMaxPageSize caps the capacity of pages allocated later on.
	DefaultMaxPageSize = 64 * 1024
)

// Config configures page allocation of an arena.
//
// The first page has PageSize bytes. Every following page doubles the
// capacity of its predecessor, up to MaxPageSize. Values which do not fit
// into a page of that capacity are allocated on the side.
// Zero values select the defaults.
type Config struct {
	PageSize    int
	MaxPageSize int
}

func (cfg Config) normalized() Config {
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPageSize == 0 {
		cfg.MaxPageSize = max(DefaultMaxPageSize, cfg.PageSize)
	}
	return cfg
}

// Validate checks a configuration for consistency.
func (cfg Config) Validate() error {
	cfg = cfg.normalized()
	if cfg.PageSize < 0 || cfg.MaxPageSize < 0 {
		return fmt.Errorf("%w: negative page size", ErrInvalidConfig)
	}
	if cfg.MaxPageSize < cfg.PageSize {
		return fmt.Errorf("%w: max page size %d is less than page size %d",
			ErrInvalidConfig, cfg.MaxPageSize, cfg.PageSize)
	}
	return nil
}
