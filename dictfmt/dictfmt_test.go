package dictfmt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/dict"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/require"
)

// traceTo routes the core tracer to t's log at the given level. The returned
// teardown switches tracing off again, so later tests never log to a
// finished t.
func traceTo(t *testing.T, level tracing.TraceLevel) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	teardown := gotestingadapter.RedirectTracing(t)
	return func() {
		teardown()
		gtrace.CoreTracer = gtrace.NoOpTrace
	}
}

func sampleDict(t *testing.T, keys ...string) *dict.Dict {
	t.Helper()
	d := dict.New()
	for i, k := range keys {
		require.NoError(t, d.InsertString(k, fmt.Sprintf("value-%d", i)))
	}
	return d
}

func TestTreeShowsLevels(t *testing.T) {
	defer traceTo(t, tracing.LevelDebug)()
	//
	d := sampleDict(t, "a", "b", "c", "d", "e", "f", "g")
	var bf bytes.Buffer
	require.NoError(t, Tree(&bf, d, nil))
	out := bf.String()
	t.Logf("\n%s", out)
	root := d.Root()
	require.Contains(t, out, fmt.Sprintf("%s [%d]\n", root.Key(), root.Level()))
	require.Contains(t, out, "L ")
	require.Contains(t, out, "R ")
	require.Equal(t, d.Len(), strings.Count(out, "["))
}

func TestTreeEmpty(t *testing.T) {
	var bf bytes.Buffer
	require.NoError(t, Tree(&bf, dict.New(), nil))
	require.Equal(t, "(empty)\n", bf.String())
	require.Error(t, Tree(nil, dict.New(), nil))
}

func TestTableAligned(t *testing.T) {
	defer traceTo(t, tracing.LevelDebug)()
	//
	d := dict.New()
	require.NoError(t, d.InsertString("bbb", "2"))
	require.NoError(t, d.InsertString("a", "1"))
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, &Config{Context: uax11.LatinContext}))
	require.Equal(t, "a   │ 1\nbbb │ 2\n", bf.String())
}

func TestTableTruncatesValues(t *testing.T) {
	d := dict.New()
	require.NoError(t, d.InsertString("k", "abcdefghijklmnopqrstuvwxyz"))
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, &Config{LineWidth: 16}))
	line := bf.String()
	require.True(t, strings.HasSuffix(line, "…\n"), "expected ellipsis in %q", line)
	require.True(t, strings.HasPrefix(line, "k │ abc"))
	require.NotContains(t, line, "xyz")
}

func TestTableColors(t *testing.T) {
	d := sampleDict(t, "x")
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, &Config{Color: true}))
	require.Contains(t, bf.String(), "\x1b[")
	bf.Reset()
	require.NoError(t, Table(&bf, d, &Config{}))
	require.NotContains(t, bf.String(), "\x1b[")
}

func TestTableNonUTF8Keys(t *testing.T) {
	d := dict.New()
	require.NoError(t, d.Insert([]byte{0xff, 'a'}, []byte("v"), dict.OwnAll))
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, nil))
	require.Contains(t, bf.String(), `"\xffa"`)
}

func TestTableQuotesControlCharacters(t *testing.T) {
	d := dict.New()
	require.NoError(t, d.InsertString("a\nb", "tab\there"))
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, nil))
	out := bf.String()
	require.Equal(t, 1, strings.Count(out, "\n"), "expected a single line in %q", out)
	require.Contains(t, out, `"a\nb"`)
	require.Contains(t, out, `"tab\there"`)
}

func TestTableLeavesClientPaletteAlone(t *testing.T) {
	key := color.New(color.FgRed)
	key.DisableColor()
	palette := &Palette{Key: key, Value: color.New(color.FgGreen), Level: color.New(color.FgYellow)}
	d := sampleDict(t, "x")
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, d, &Config{Color: true, Palette: palette}))
	require.Contains(t, bf.String(), "\x1b[31m")
	require.Equal(t, "x", key.Sprint("x"), "client color must stay disabled")
}
