package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/strvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lorem = `Lorem ipsum dolor sit amet,
consectetur adipiscing elit,

sed do eiusmod tempor incididunt
ut labore et dolore magna aliqua.
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := Load(writeFile(t, "lorem.txt", lorem), Config{})
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())
	assert.Equal(t, "Lorem ipsum dolor sit amet,", v.Get(0))
	assert.Equal(t, "", v.Get(2))
	assert.False(t, v.IsNull(2))
	assert.Equal(t, "ut labore et dolore magna aliqua.", v.Get(4))
	assert.Equal(t, lorem, v.Join("\n")+"\n")
}

func TestLoadLineEndings(t *testing.T) {
	path := writeFile(t, "crlf.txt", "one\r\ntwo\r\n\r\nthree")
	v, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "", "three"}, v.Strings())
	//
	v, err = Load(path, Config{KeepCR: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"one\r", "two\r", "\r", "three"}, v.Strings())
	//
	v, err = Load(path, Config{SkipEmpty: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, v.Strings())
}

func TestLoadEmptyFile(t *testing.T) {
	v, err := Load(writeFile(t, "empty.txt", ""), Config{})
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"), Config{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
	//
	_, err = Load(t.TempDir(), Config{})
	assert.ErrorIs(t, err, ErrNotRegular)
	//
	_, err = Load(writeFile(t, "x.txt", "x"), Config{Parallel: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	//
	_, err = Load(writeFile(t, "x.txt", "x"), Config{Vec: strvec.Config{PageSize: -1}})
	assert.ErrorIs(t, err, strvec.ErrInvalidConfig)
	//
	_, err = Load(writeFile(t, "long.txt", strings.Repeat("x", 100)+"\n"), Config{MaxLineLength: 64})
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	v := strvec.New()
	v.Append("header")
	n, err := ReadLines(strings.NewReader("a\nb\n"), v, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "header|a|b", v.Join("|"))
}

func TestLoadAsyncProgress(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := writeFile(t, "numbers.txt", b.String())
	l, err := Open(path, Config{ProgressEvery: 100})
	require.NoError(t, err)
	ch, ok := l.Subscribe(context.Background(), 4)
	require.True(t, ok)
	received := make(chan []Progress)
	go func() {
		var msgs []Progress
		for m := range ch {
			msgs = append(msgs, m.(Progress))
		}
		received <- msgs
	}()
	l.Start(context.Background())
	v, err := l.Wait()
	require.NoError(t, err)
	require.Equal(t, 1000, v.Len())
	assert.Equal(t, "line 999", v.Get(999))
	msgs := <-received
	last := 0
	for _, m := range msgs {
		assert.Equal(t, path, m.Name)
		assert.Equal(t, int64(b.Len()), m.Size)
		assert.GreaterOrEqual(t, m.Lines, last)
		last = m.Lines
	}
}

func TestLoadAsyncCancel(t *testing.T) {
	path := writeFile(t, "many.txt", strings.Repeat("some line\n", 10000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l, err := LoadAsync(ctx, path, Config{ProgressEvery: 10})
	require.NoError(t, err)
	_, err = l.Wait()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFiles(t *testing.T) {
	names := []string{
		writeFile(t, "a.txt", "a1\na2\n"),
		writeFile(t, "b.txt", "b1\n"),
		writeFile(t, "c.txt", lorem),
	}
	vecs, err := LoadFiles(context.Background(), Config{Parallel: 2}, names...)
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	assert.Equal(t, "a1,a2", vecs[0].Join(","))
	assert.Equal(t, "b1", vecs[1].Join(","))
	assert.Equal(t, 5, vecs[2].Len())
	//
	_, err = LoadFiles(context.Background(), Config{}, names[0], filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoaderClose(t *testing.T) {
	path := writeFile(t, "unused.txt", lorem)
	l, err := Open(path, Config{})
	require.NoError(t, err)
	require.NoError(t, l.Close())
	_, err = l.Wait()
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, l.Close())
	//
	l, err = LoadAsync(context.Background(), path, Config{})
	require.NoError(t, err)
	require.NoError(t, l.Close())
	v, err := l.Wait()
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
}
