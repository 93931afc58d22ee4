package list

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cowlist/list/storage"
)

var kinds = []storage.Kind{storage.KindBuffer, storage.KindNodes}

func forEachKind(t *testing.T, fn func(t *testing.T, newList func() *List[int])) {
	t.Helper()
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			fn(t, func() *List[int] { return NewWithConfig[int](&storage.Config{Kind: k}) })
		})
	}
}

// requirePanicsIs asserts that fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error, got %T", recovered)
	require.ErrorIs(t, err, target)
}

func TestList_NewIsEmptyAndUnique(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()

		assert.Equal(t, 0, l.Len())
		assert.True(t, l.IsEmpty())
		assert.True(t, l.IsUnique())
		assert.Equal(t, 0, l.Cap())
	})
}

func TestList_ZeroValueIsUsable(t *testing.T) {
	var l List[string]

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())
	requirePanicsIs(t, ErrEmptyList, func() { l.Peek() })

	l.Push("a")
	l.Push("b")
	assert.Equal(t, "b", l.Pop())
	assert.Equal(t, "a", l.Peek())
	assert.Equal(t, storage.KindBuffer, l.Stats().Kind)
}

func TestList_PushPeek(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()

		l.Push(1)
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, 1, l.Peek())

		l.Push(2)
		assert.Equal(t, 2, l.Len())
		assert.Equal(t, 2, l.Peek())
	})
}

func TestList_PopScenarios(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()
		l.Push(1)
		assert.Equal(t, 1, l.Pop())
		assert.Equal(t, 0, l.Len())

		l = newList()
		l.Push(1)
		l.Push(2)
		assert.Equal(t, 2, l.Pop())
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, 1, l.Peek())
	})
}

func TestList_EmptyAccessPanics(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()

		require.PanicsWithValue(t, ErrEmptyList, func() { l.Pop() })
		require.PanicsWithValue(t, ErrEmptyList, func() { l.Peek() })

		l.Push(7)
		l.Pop()
		require.PanicsWithValue(t, ErrEmptyList, func() { l.Pop() })
		assert.Equal(t, 0, l.Len())
	})
}

func TestList_LIFORoundTrip(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		rng := rand.New(rand.NewSource(7))

		for _, n := range []int{1, 2, 3, 17, 1000} {
			l := newList()
			pushed := make([]int, n)
			for i := range pushed {
				pushed[i] = rng.Int()
				l.Push(pushed[i])
			}

			for i := n - 1; i >= 0; i-- {
				require.Equal(t, pushed[i], l.Pop())
			}
			assert.Equal(t, 0, l.Len())
			require.NoError(t, l.Validate())
		}
	})
}

func TestList_PeekDoesNotMutate(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()
		for i := range 5 {
			l.Push(i)
		}
		before := l.Values()

		for range 3 {
			assert.Equal(t, 4, l.Peek())
		}

		assert.Equal(t, 5, l.Len())
		assert.Equal(t, before, l.Values())
	})
}

func TestList_PushPopRestoresCount(t *testing.T) {
	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()
		for n := range 10 {
			before := l.Len()
			l.Push(n)
			l.Pop()
			assert.Equal(t, before, l.Len())
			l.Push(n)
		}
	})
}

func TestList_CyclesDoNotGrowTable(t *testing.T) {
	const n = 100000

	forEachKind(t, func(t *testing.T, newList func() *List[int]) {
		l := newList()
		for i := range n {
			l.Push(i)
		}
		for range n {
			l.Pop()
		}
		filled := l.Cap()

		for range 2 {
			for i := range n {
				l.Push(i)
			}
			assert.Equal(t, filled, l.Cap())
			for range n {
				l.Pop()
			}
			assert.Equal(t, filled, l.Cap())
		}
		require.NoError(t, l.Validate())
	})
}

func TestList_Stats(t *testing.T) {
	l := New[int]()
	for i := range 3 {
		l.Push(i)
	}
	l.Pop()
	l.Push(9)

	st := l.Stats()
	assert.Equal(t, storage.KindBuffer, st.Kind)
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, 3, st.Cap)
	assert.Equal(t, 4, st.Pushes)
	assert.Equal(t, 1, st.Pops)
	assert.Equal(t, 1, st.Reuses)
	assert.Equal(t, 3, st.GrowCalls)
	assert.Equal(t, 0, st.Forks)
	assert.False(t, st.Shared)
}

func TestList_LogsGrowthAndFork(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := NewWithConfig[int](&storage.Config{Logger: logger})
	l.Push(1)

	c := l.Clone()
	c.Push(2)

	out := buf.String()
	assert.Contains(t, out, "slot table grown")
	assert.Contains(t, out, "storage forked")
	assert.Contains(t, out, "strategy=buffer")
}
