package strvec

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strvec/arena"
)

func TestSplitDefault(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := New()
	n := v.Split("a,b,,c,", ",")
	if n != 5 || v.Find("c") != 3 {
		t.Fatalf("expected 5 tokens with c at 3, have %v", v.Strings())
	}
	if v.Find("") != 2 || v.FindFrom("", 3) != 4 || v.FindFrom("", 5) != NotFound {
		t.Errorf("unexpected positions of empty tokens")
	}
	if v.Find("B") != NotFound || v.FindI("B") != 1 {
		t.Errorf("unexpected results for case-insensitive find")
	}
	tmp := arena.NewScratch(0)
	if joined := string(v.JoinTemp(tmp, ";")); joined != "a;b;;c;" {
		t.Errorf("expected a;b;;c;, have %q", joined)
	}
	checkRemoveAt(t, v)
}

func TestSplitCollapse(t *testing.T) {
	v := NewWithData[data1]()
	n := v.Split("a,b,,c,", ",", CollapseEmpty())
	if n != 3 || v.Find("c") != 2 {
		t.Fatalf("expected 3 tokens with c at 2, have %v", v.Strings())
	}
	if joined := v.Join(";"); joined != "a;b;c" {
		t.Errorf("expected a;b;c, have %q", joined)
	}
	checkRemoveAt(t, v)
}

func TestSplitMaxParts(t *testing.T) {
	for _, c := range []struct {
		input  string
		sep    string
		opts   []SplitOption
		tokens []string
	}{
		{"a,b,,c,d", ",", []SplitOption{CollapseEmpty(), MaxParts(3)}, []string{"a", "b", "c,d"}},
		{"a,b,,c,d", ",", []SplitOption{MaxParts(3)}, []string{"a", "b", ",c,d"}},
		{"a,b,,c,d", ",", []SplitOption{CollapseEmpty(), MaxParts(1)}, []string{"a,b,,c,d"}},
		{"a,b,,c,d", ",", []SplitOption{CollapseEmpty(), MaxParts(0)}, []string{"a,b,,c,d"}},
		{"a,b,,c,d", ",", []SplitOption{MaxParts(-5)}, []string{"a,b,,c,d"}},
		{" CmdCreateAnnotHighlight   #00ff00 openEdit", " ", []SplitOption{CollapseEmpty(), MaxParts(2)},
			[]string{"CmdCreateAnnotHighlight", "#00ff00 openEdit"}},
		{"", " ", []SplitOption{CollapseEmpty(), MaxParts(2)}, []string{""}},
		{"", ",", nil, []string{""}},
		{",,", ",", nil, []string{"", "", ""}},
		{",,", ",", []SplitOption{CollapseEmpty()}, []string{""}},
		{"a::b::c", "::", nil, []string{"a", "b", "c"}},
		{"abc", "", nil, []string{"abc"}},
		{"a b c", " ", []SplitOption{MaxParts(10)}, []string{"a", "b", "c"}},
	} {
		for _, v := range []*Vec[data1]{NewWithData[data1](), {}} {
			v.Append("to be cleared")
			n := v.Split(c.input, c.sep, c.opts...)
			if n != len(c.tokens) || v.Len() != n {
				t.Errorf("split of %q: expected %d tokens, have %d: %q", c.input, len(c.tokens), n, v.Strings())
				continue
			}
			for i, tok := range c.tokens {
				if v.IsNull(i) || v.Get(i) != tok {
					t.Errorf("split of %q: expected %q at %d, have %q", c.input, tok, i, v.Get(i))
				}
			}
		}
	}
}

func TestSplitFunction(t *testing.T) {
	v := Split("a,b,,c,d", ",", CollapseEmpty(), MaxParts(3))
	if got := v.Join("__"); got != "a__b__c,d" {
		t.Errorf("expected a__b__c,d, have %q", got)
	}
	v = Split("a,b,,c,d", ",", MaxParts(3))
	if got := v.Join("__"); got != "a__b__,c,d" {
		t.Errorf("expected a__b__,c,d, have %q", got)
	}
}

func TestJoinTemp(t *testing.T) {
	tmp := arena.NewScratch(16)
	v := New()
	if b := v.JoinTemp(tmp, ";"); b == nil || len(b) != 0 {
		t.Errorf("expected empty non-nil result for empty vector")
	}
	v.AppendNull()
	v.Append("foo")
	v.AppendNull()
	v.Append("bar")
	b1 := v.JoinTemp(tmp, ", ")
	if string(b1) != "foo, bar" {
		t.Errorf("expected 'foo, bar', have %q", b1)
	}
	b2 := v.JoinTemp(tmp, "")
	if string(b2) != "foobar" || string(b1) != "foo, bar" {
		t.Errorf("scratch results must not overlap: %q, %q", b1, b2)
	}
	if got := v.AppendJoin([]byte("> "), "|"); string(got) != "> foo|bar" {
		t.Errorf("unexpected AppendJoin result %q", got)
	}
}
