package textfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/strvec"
	"golang.org/x/sync/errgroup"
)

// Load reads a file, which must be a text file, into a new string vector,
// with one element per line. Line terminators are not part of the elements.
func Load(name string, cfg Config) (*strvec.StrVec, error) {
	l, err := Open(name, cfg)
	if err != nil {
		return nil, err
	}
	l.Start(context.Background())
	return l.Wait()
}

// ReadLines appends the lines of r to v and returns the number of lines
// appended.
func ReadLines(r io.Reader, v *strvec.StrVec, cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	return readLines(r, v, cfg.normalized(), nil)
}

// readLines calls onLine after every appended line; an error returned from
// onLine stops reading.
func readLines(r io.Reader, v *strvec.StrVec, cfg Config, onLine func(int) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialScannerBufSize, cfg.MaxLineLength)), cfg.MaxLineLength)
	scanner.Split(splitLines)
	n := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if !cfg.KeepCR {
			line = bytes.TrimSuffix(line, []byte{'\r'})
		}
		if cfg.SkipEmpty && len(line) == 0 {
			continue
		}
		v.Append(string(line))
		n++
		if onLine != nil {
			if err := onLine(n); err != nil {
				return n, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("textfile: after line %d: %w", n, err)
	}
	return n, nil
}

// splitLines is a bufio.SplitFunc splitting at '\n' only, leaving a
// trailing '\r' in place.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// --- Asynchronous loading --------------------------------------------------

// Progress is broadcast by a Loader while it reads a file.
type Progress struct {
	Name  string // file name
	Lines int    // lines loaded so far
	Bytes int64  // bytes read so far
	Size  int64  // size of the file in bytes
	Done  bool   // set for the final message of a successful load
}

// Loader reads a text file into a string vector in the background.
//
// The vector is filled by a single goroutine and must not be accessed before
// Wait returns.
type Loader struct {
	name  string
	cfg   Config
	file  *os.File
	size  int64
	cast  *caster.Caster // broadcaster for progress messages
	vec   *strvec.StrVec
	err   error
	once  sync.Once
	done  chan struct{}
	count countingReader
}

// Open opens a text file for loading, checking for error conditions.
// Loading starts with a call to Start.
func Open(name string, cfg Config) (*Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	vec, err := strvec.NewWithConfig(cfg.Vec)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &Loader{
		name: name,
		cfg:  cfg,
		file: file,
		size: fi.Size(),
		cast: caster.New(nil), // we will broadcast messages while lines are loaded
		vec:  vec,
		done: make(chan struct{}),
	}, nil
}

// LoadAsync opens a text file and starts loading it in the background.
func LoadAsync(ctx context.Context, name string, cfg Config) (*Loader, error) {
	l, err := Open(name, cfg)
	if err != nil {
		return nil, err
	}
	l.Start(ctx)
	return l, nil
}

// Subscribe returns a channel of Progress messages, buffered with the given
// capacity. The channel is closed when loading has finished. Subscribers
// must drain their channel, as loading blocks while a subscriber is full.
// Subscribing after Start may miss early messages.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Start starts loading in a background goroutine. Cancelling ctx stops
// loading with ctx's error. Subsequent calls of Start have no effect.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		l.count.r = l.file
		go l.run(ctx)
	})
}

// Wait waits for loading to finish and returns the vector or the first error.
// If loading has not been started, Wait starts it.
func (l *Loader) Wait() (*strvec.StrVec, error) {
	l.Start(context.Background())
	<-l.done
	if l.err != nil {
		return nil, l.err
	}
	return l.vec, nil
}

// Close releases the file of a loader which has not been started. For a
// started loader, Close waits for loading to finish. Wait on a loader closed
// before starting returns ErrClosed.
func (l *Loader) Close() error {
	started := true
	l.once.Do(func() {
		started = false
		l.err = ErrClosed
		l.cast.Close()
		close(l.done)
	})
	if started {
		<-l.done
		return nil
	}
	return l.file.Close()
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)
	defer l.cast.Close()
	defer l.file.Close()
	n, err := readLines(&l.count, l.vec, l.cfg, func(lines int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lines%l.cfg.ProgressEvery == 0 {
			l.cast.Pub(l.progress(lines, false))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("loading %s: %v", l.name, err)
		l.err = err
		return
	}
	l.cast.Pub(l.progress(n, true))
	tracer().Debugf("loaded %d lines from %s", n, l.name)
}

func (l *Loader) progress(lines int, done bool) Progress {
	return Progress{
		Name:  l.name,
		Lines: lines,
		Bytes: l.count.n,
		Size:  l.size,
		Done:  done,
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// --- Loading multiple files ------------------------------------------------

// LoadFiles loads several text files concurrently, at most cfg.Parallel at
// a time. The result holds the vectors in the order of names. If loading
// any of the files fails, the remaining loads are cancelled and the first
// error is returned.
func LoadFiles(ctx context.Context, cfg Config, names ...string) ([]*strvec.StrVec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	vecs := make([]*strvec.StrVec, len(names))
	for i, name := range names {
		g.Go(func() error {
			l, err := LoadAsync(ctx, name, cfg)
			if err != nil {
				return err
			}
			vecs[i], err = l.Wait()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vecs, nil
}
