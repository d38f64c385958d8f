package strvec

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestIterator(t *testing.T) {
	v := NewWithData[data1]()
	appendFixture(v)
	for i := 0; i < v.Len(); i++ {
		v.SetData(i, data1{n: uint16(i * 10)})
	}
	i := 0
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		if it.Index() != i || it.Str() != v.At(i) || it.Data().n != uint16(i*10) {
			t.Errorf("iterator at %d disagrees with vector", i)
		}
		i++
	}
	if i != v.Len() {
		t.Errorf("expected %d iterations, have %d", v.Len(), i)
	}
	it := v.Begin().Add(4)
	if it.Str().String() != longString {
		t.Errorf("expected random access to yield %q, have %q", longString, it.Str())
	}
	if !it.Add(1).Done() {
		t.Errorf("expected iterator at end")
	}
	if !v.IteratorAt(2).Equal(v.End().Add(-3)) {
		t.Errorf("expected iterators to be equal")
	}
}

func TestIteratorSurvivesSetAt(t *testing.T) {
	v := New()
	appendFixture(v)
	it := v.Begin()
	v.SetAt(0, "changed")
	if it.Str().String() != "changed" {
		t.Errorf("iterator must see the new value, has %q", it.Str())
	}
}

func expectStale(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStaleIterator) {
			t.Errorf("%s: expected ErrStaleIterator panic, got %v", name, r)
		}
	}()
	f()
}

func TestStaleIterator(t *testing.T) {
	v := New()
	appendFixture(v)
	it := v.Begin()
	v.Append("more")
	expectStale(t, "Str", func() { it.Str() })
	it = v.Begin()
	v.RemoveAtFast(0)
	expectStale(t, "Next", func() { it.Next() })
	it = v.Begin()
	v.Sort()
	expectStale(t, "Done", func() { it.Done() })
	expectStale(t, "zero iterator", func() { Iterator[struct{}]{}.Str() })
	expectStale(t, "range", func() {
		for i := range v.All() {
			if i == 1 {
				v.RemoveAt(0)
			}
		}
	})
	r := v.Reader(",")
	v.Reset()
	expectStale(t, "Reader", func() { r.Read(make([]byte, 4)) })
}

func TestValues(t *testing.T) {
	v := New()
	appendFixture(v)
	var parts []string
	for s := range v.Values() {
		if !s.IsNull() {
			parts = append(parts, s.String())
		}
	}
	if strings.Join(parts, ",") != v.Join(",") {
		t.Errorf("Values and Join disagree")
	}
	n := 0
	for i, s := range v.All() {
		if s != v.At(i) {
			t.Errorf("All yields a wrong handle at %d", i)
		}
		n++
		if n == 2 {
			break
		}
	}
}

func TestReader(t *testing.T) {
	v := New()
	v.AppendNull()
	v.Append("foo")
	v.Append("")
	v.AppendNull()
	v.Append("bar")
	v.AppendNull()
	for _, sep := range []string{"", ", ", "--sep--"} {
		want := v.Join(sep)
		got, err := io.ReadAll(iotest.OneByteReader(v.Reader(sep)))
		if err != nil || string(got) != want {
			t.Errorf("reader with sep %q: expected %q, have %q (%v)", sep, want, got, err)
		}
		if err := iotest.TestReader(v.Reader(sep), []byte(want)); err != nil {
			t.Error(err)
		}
	}
	if got, _ := io.ReadAll(New().Reader(",")); len(got) != 0 {
		t.Errorf("expected no bytes from an empty vector")
	}
}
