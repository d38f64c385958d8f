package strvec

import "strings"

// SplitOption configures Split.
type SplitOption func(*splitConfig)

type splitConfig struct {
	collapse bool
	limited  bool
	maxParts int
}

// CollapseEmpty lets Split omit empty tokens.
func CollapseEmpty() SplitOption {
	return func(c *splitConfig) {
		c.collapse = true
	}
}

// MaxParts limits Split to at most n tokens. The last token is the rest of
// the input, not split any further. n ≤ 0 is treated as 1.
func MaxParts(n int) SplitOption {
	return func(c *splitConfig) {
		c.limited = true
		c.maxParts = max(n, 1)
	}
}

// Split resets v and fills it with the tokens of input, delimited by
// occurrences of sep. It returns the number of tokens.
//
// Every separator ends a token, so adjacent separators produce empty tokens
// and a trailing separator produces an empty last token. With CollapseEmpty,
// empty tokens are dropped; if nothing else remains, the result is a single
// empty token. With MaxParts(n), the first n-1 tokens are split as usual and
// the n-th token is the remaining input, verbatim; when collapsing, separators
// at the start of the remaining input are skipped first.
//
// An empty sep does not split: the whole input is one token.
func (v *Vec[D]) Split(input, sep string, opts ...SplitOption) int {
	var cfg splitConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	v.Reset()
	rest := input
	for sep != "" {
		i := strings.Index(rest, sep)
		if i < 0 {
			break
		}
		if cfg.collapse && i == 0 {
			rest = rest[len(sep):]
			continue
		}
		if cfg.limited && len(v.slots) == cfg.maxParts-1 {
			break
		}
		v.Append(rest[:i])
		rest = rest[i+len(sep):]
	}
	if !cfg.collapse || rest != "" || len(v.slots) == 0 {
		v.Append(rest)
	}
	T().Debugf("strvec: split %d bytes into %d tokens", len(input), len(v.slots))
	return len(v.slots)
}

// Split creates a string vector from the tokens of input, delimited by sep.
// See Vec.Split for the options.
func Split(input, sep string, opts ...SplitOption) *StrVec {
	v := New()
	v.Split(input, sep, opts...)
	return v
}
