/*
Package inspect prints the storage layout of string vectors to a console,
for debugging purposes.

For every arena page an occupancy bar is shown, followed by the elements
of the vector and the kind of storage each of them lives in. Storage kinds
are shown in color.
*/
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strvec"
	"github.com/npillmayer/strvec/arena"
	"golang.org/x/term"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config represents a set of configuration parameters for printing.
type Config struct {
	BarWidth    int                         // width of occupancy bars in fixed width positions
	MaxElements int                         // number of elements listed; 0 = all
	MaxValueLen int                         // values are cut after this number of bytes; 0 = 32
	Colors      map[arena.Kind]*color.Color // nil = default palette
}

func (cfg *Config) normalized() Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.BarWidth <= 0 {
		c.BarWidth = 40
	}
	if c.MaxValueLen <= 0 {
		c.MaxValueLen = 32
	}
	if c.Colors == nil {
		c.Colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[arena.Kind]*color.Color {
	palette := map[arena.Kind]*color.Color{
		arena.KindNull: color.New(color.Faint),
		arena.KindPage: color.New(color.FgBlue),
		arena.KindSide: color.New(color.FgRed),
	}
	return palette
}

// Print outputs the layout of v to stdout, with a config derived from the
// current terminal's properties.
func Print[D any](v *strvec.Vec[D]) error {
	return Fprint(os.Stdout, v, ConfigFromTerminal())
}

// Fprint outputs the layout of v to w. config may be nil.
func Fprint[D any](w io.Writer, v *strvec.Vec[D], config *Config) error {
	cfg := config.normalized()
	bw := bufio.NewWriter(w)
	st := v.Stats()
	fmt.Fprintf(bw, "strvec: %d elements, %d pages, %d side allocations\n",
		v.Len(), st.Pages, st.SideAllocs)
	n := 0
	for page := range v.Pages() {
		n++
		fmt.Fprintf(bw, "page %3d %s %d/%d bytes\n", n, bar(page.Len(), page.Cap(), cfg.BarWidth),
			page.Len(), page.Cap())
	}
	for i, s := range v.All() {
		if cfg.MaxElements > 0 && i == cfg.MaxElements {
			fmt.Fprintf(bw, "     … %d more\n", v.Len()-i)
			break
		}
		kind := v.KindAt(i)
		fmt.Fprintf(bw, "%6d ", i)
		if c, ok := cfg.Colors[kind]; ok {
			c.Fprint(bw, kind.String())
		} else {
			bw.WriteString(kind.String())
		}
		if !s.IsNull() {
			fmt.Fprintf(bw, " %q", cut(s.String(), cfg.MaxValueLen))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, st)
	return bw.Flush()
}

// bar draws the occupancy of a page.
func bar(used, capacity, width int) string {
	filled := 0
	if capacity > 0 {
		filled = min(width, used*width/capacity)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and sizes occupancy bars accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{BarWidth: 40}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 50 {
			config.BarWidth = w - 40
		}
	}
	T().P("inspect", "console").Infof("setting bar width to %d en", config.BarWidth)
	return config
}
