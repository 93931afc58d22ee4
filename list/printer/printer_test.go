package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joshuapare/cowlist/list"
)

func newTestList(vs ...int) *list.List[int] {
	l := list.New[int]()
	for _, v := range vs {
		l.Push(v)
	}
	return l
}

func TestPrinter_PrintList_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())

	require.NoError(t, PrintList(p, newTestList(0, 1, 2)))

	want := "List (buffer) len=3 cap=3\n" +
		"  [0] 2\n" +
		"  [1] 1\n" +
		"  [2] 0\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_PrintList_TextTruncated(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxElements = 2
	p := New(&buf, opts)

	require.NoError(t, PrintList(p, newTestList(1, 2, 3, 4, 5)))

	out := buf.String()
	assert.Contains(t, out, "[1] 4")
	assert.NotContains(t, out, "[2]")
	assert.Contains(t, out, "... 3 more")
}

func TestPrinter_PrintList_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New(&buf, opts)

	require.NoError(t, PrintList(p, newTestList(1, 2)))

	var got jsonList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "buffer", got.Kind)
	assert.Equal(t, 2, got.Len)
	assert.Equal(t, []any{float64(2), float64(1)}, got.Elements)
	assert.False(t, got.Truncated)
}

func TestPrinter_PrintSlots_Text(t *testing.T) {
	l := newTestList(10, 20, 30)
	l.Pop()

	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, PrintSlots(p, l.View()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // summary, header, 3 slots
	assert.Equal(t, "head=1 free=2 len=2 cap=3", lines[0])
	assert.Contains(t, lines[2], "live")
	assert.Contains(t, lines[4], "free")
}

func TestPrinter_PrintSlots_HideFree(t *testing.T) {
	l := newTestList(10, 20, 30)
	l.Pop()

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowFree = false
	opts.Format = FormatJSON
	p := New(&buf, opts)
	require.NoError(t, PrintSlots(p, l.View()))

	var got jsonSlots
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Head)
	assert.Equal(t, 2, got.FreeHead)
	require.Len(t, got.Slots, 2)
	for _, s := range got.Slots {
		assert.True(t, s.Live)
	}
}

func TestPrinter_PrintStats_GroupsDigits(t *testing.T) {
	l := list.New[int]()
	for i := range 12345 {
		l.Push(i)
	}

	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.PrintStats(l.Stats()))

	out := buf.String()
	assert.Contains(t, out, "Pushes:         12,345")
	assert.Contains(t, out, "Strategy:       buffer")
}

func TestPrinter_PrintStats_JSON(t *testing.T) {
	l := newTestList(1, 2, 3)
	c := l.Clone()
	c.Push(4)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New(&buf, opts)
	require.NoError(t, p.PrintStats(c.Stats()))

	var got jsonStats
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Forks)
	assert.Equal(t, 4, got.Len)
}

func TestNew_DefaultsLanguage(t *testing.T) {
	p := New(&bytes.Buffer{}, Options{})
	assert.Equal(t, language.English, p.opts.Language)
}
