package wrap

import (
	"bufio"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/strvec"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
)

// DefaultLineWidth is used for configurations without a line width.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for line breaking.
type Config struct {
	LineWidth int            // in ‘en’s, i.e. fixed width positions
	Context   *uax11.Context // nil means uax11.LatinContext
}

func (cfg Config) normalized() Config {
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	return cfg
}

var setupGraphemes sync.Once

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/

// Breaks returns the byte positions in text after which lines end. The last
// position is len(text), except for text ending in a mandatory break.
//
// Trailing white space of a fragment may hang over the line width. A fragment
// wider than a line is put onto a line of its own.
func Breaks(text string, cfg Config) []int {
	cfg = cfg.normalized()
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	breaks := make([]int, 0, 20)
	spaceleft := cfg.LineWidth
	pos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		visible := width(strings.TrimRightFunc(frag, unicode.IsSpace), cfg.Context)
		if !linestart && visible > spaceleft { // fragment overshoots line
			breaks = append(breaks, pos)
			T().P("wrap", "firstfit").Debugf("break @ %d", pos)
			spaceleft = cfg.LineWidth
		}
		pos += len(frag)
		spaceleft -= width(frag, cfg.Context)
		linestart = false
		if mandatoryBreak(frag) {
			breaks = append(breaks, pos)
			spaceleft = cfg.LineWidth
			linestart = true
		}
	}
	if !linestart { // we have a partial line to consume
		breaks = append(breaks, pos)
	}
	return breaks
}

func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func mandatoryBreak(frag string) bool {
	r, _ := utf8.DecodeLastRuneInString(frag)
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Lines wraps text and appends the lines to v, without trailing white space.
// It returns the number of lines appended.
func Lines(v *strvec.StrVec, text string, cfg Config) int {
	breaks := Breaks(text, cfg)
	prev := 0
	for _, pos := range breaks {
		v.Append(strings.TrimRightFunc(text[prev:pos], unicode.IsSpace))
		prev = pos
	}
	return len(breaks)
}

// Paragraphs wraps every element of src as a paragraph of its own and returns
// the lines of all paragraphs. Null elements of src are copied to the result
// as paragraph separators.
func Paragraphs(src *strvec.StrVec, cfg Config) *strvec.StrVec {
	v := strvec.New()
	for s := range src.Values() {
		if s.IsNull() {
			v.AppendNull()
			continue
		}
		Lines(v, s.String(), cfg)
	}
	return v
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a line breaking Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context is
// created based on heuristics from the user environment.
func ConfigFromTerminal() Config {
	config := Config{LineWidth: DefaultLineWidth}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("wrap", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
