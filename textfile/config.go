package textfile

import (
	"errors"
	"fmt"

	"github.com/npillmayer/strvec"
)

// Default values for loading.
const (
	DefaultMaxLineLength  = 1024 * 1024
	DefaultProgressEvery  = 1024
	DefaultParallel       = 4
	initialScannerBufSize = 4096
)

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrClosed is returned by Wait for a loader closed before loading started.
var ErrClosed = errors.New("textfile: loader closed")

// ErrInvalidConfig is returned for configurations which fail validation.
var ErrInvalidConfig = errors.New("textfile: invalid configuration")

// Config controls how text files are split into lines.
// The zero value is a valid configuration.
type Config struct {
	KeepCR        bool          // keep a trailing '\r' of CRLF line endings
	SkipEmpty     bool          // drop empty lines
	MaxLineLength int           // lines longer than this are an error; 0 = default
	ProgressEvery int           // lines between progress messages of LoadAsync; 0 = default
	Parallel      int           // number of files LoadFiles reads at once; 0 = default
	Vec           strvec.Config // configuration of the resulting vectors
}

func (cfg Config) normalized() Config {
	if cfg.MaxLineLength == 0 {
		cfg.MaxLineLength = DefaultMaxLineLength
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = DefaultParallel
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.MaxLineLength < 0 || cfg.ProgressEvery < 0 || cfg.Parallel < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidConfig)
	}
	return nil
}
