package inspect

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	color.NoColor = true
	//
	v, err := strvec.NewWithConfig(strvec.Config{PageSize: 16, MaxPageSize: 32})
	require.NoError(t, err)
	v.Append("Hello")
	v.Append("say")
	v.AppendNull()
	v.Append(strings.Repeat("long value ", 4))
	var b strings.Builder
	require.NoError(t, Fprint(&b, v, &Config{BarWidth: 8}))
	out := b.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "strvec: 4 elements, 1 pages, 1 side allocations", lines[0])
	assert.Equal(t, "page   1 [#####...] 10/16 bytes", lines[1])
	assert.Equal(t, `     0 page "Hello"`, lines[2])
	assert.Equal(t, `     1 page "say"`, lines[3])
	assert.Equal(t, `     2 null`, lines[4])
	assert.Equal(t, `     3 side "long value long value long value…"`, lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "Arena{pages: 1"))
}

func TestFprintLimit(t *testing.T) {
	color.NoColor = true
	v := strvec.NewWithData[int]()
	for i := 0; i < 10; i++ {
		v.AppendWithData("x", i)
	}
	var b strings.Builder
	require.NoError(t, Fprint(&b, v, &Config{MaxElements: 3}))
	out := b.String()
	assert.Contains(t, out, "     2 page \"x\"\n")
	assert.NotContains(t, out, "     3 page")
	assert.Contains(t, out, "… 7 more")
}

func TestFprintNilConfig(t *testing.T) {
	color.NoColor = true
	var b strings.Builder
	require.NoError(t, Fprint(&b, strvec.New(), nil))
	assert.True(t, strings.HasPrefix(b.String(), "strvec: 0 elements, 0 pages"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[....]", bar(0, 16, 4))
	assert.Equal(t, "[##..]", bar(8, 16, 4))
	assert.Equal(t, "[####]", bar(16, 16, 4))
	assert.Equal(t, "[....]", bar(0, 0, 4))
}
