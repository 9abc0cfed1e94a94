package namedvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndPositionalAccess(t *testing.T) {
	v := New[int]()
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Len())

	v.Push(10, "a")
	v.Push(20, "b")

	require.Equal(t, 2, v.Len())
	require.False(t, v.Empty())

	rec, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Value)
	assert.Equal(t, "a", rec.Name)

	rec, err = v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Value)
	assert.Equal(t, "b", rec.Name)
}

func TestBoundsChecking(t *testing.T) {
	v := New[int]()
	v.Push(10, "a")
	v.Push(20, "b")

	testCases := []struct {
		name  string
		index int
		ok    bool
	}{
		{"first", 0, true},
		{"last", 1, true},
		{"one past end", 2, false},
		{"far past end", 5, false},
		{"negative", -1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.At(tc.index)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			}

			_, err = v.Index(tc.index)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			}
		})
	}
}

func TestNameLookup(t *testing.T) {
	v := New[int]()
	v.Push(10, "a")
	v.Push(20, "b")

	got, err := v.Value("b")
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	_, err = v.Value("z")
	assert.ErrorIs(t, err, ErrNameNotFound)

	_, err = v.Lookup("z")
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestNameLookupReturnsEarliestMatch(t *testing.T) {
	v := New[int]()
	v.Push(1, "x")
	v.Push(2, "x")

	got, err := v.Value("x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	i, ok := v.FirstIndex("x")
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestCopyIsCheap(t *testing.T) {
	v1 := New[int]()
	for i := 0; i < 1000; i++ {
		v1.Push(i, "n")
	}

	v2 := v1.Copy()

	// Copying shares the block; nothing was cloned.
	require.Same(t, v1.data, v2.data)
	assert.True(t, v1.Shared())
	assert.True(t, v2.Shared())

	// The first mutation clones, exactly once.
	v2.Push(1000, "n")
	require.NotSame(t, v1.data, v2.data)
	assert.False(t, v1.Shared())
	assert.False(t, v2.Shared())
}

func TestCopyIsolation(t *testing.T) {
	v1 := New[int]()
	v1.Push(10, "a")
	v1.Push(20, "b")

	v2 := v1.Copy()
	v2.Push(30, "c")

	require.Equal(t, 2, v1.Len())
	require.Equal(t, 3, v2.Len())

	rec, err := v1.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Value)
	assert.Equal(t, "b", rec.Name)

	// And the other direction: mutating the original leaves the copy alone.
	v3 := v1.Copy()
	v1.Push(40, "d")
	assert.Equal(t, 3, v1.Len())
	assert.Equal(t, 2, v3.Len())
}

func TestMutatingCopyRecordLeavesOriginal(t *testing.T) {
	v1 := New[int]()
	v1.Push(10, "a")
	v1.Push(20, "b")

	v2 := v1.Copy()

	rec, err := v2.Index(0)
	require.NoError(t, err)
	rec.Value = 99
	rec.Name = "renamed"

	orig, err := v1.At(0)
	require.NoError(t, err)
	assert.Equal(t, 10, orig.Value)
	assert.Equal(t, "a", orig.Name)

	changed, err := v2.At(0)
	require.NoError(t, err)
	assert.Equal(t, 99, changed.Value)
	assert.Equal(t, "renamed", changed.Name)
}

func TestLookupMutatesOnlyTheHandle(t *testing.T) {
	v1 := New[int]()
	v1.Push(1, "x")
	v1.Push(2, "x")

	v2 := v1.Copy()

	value, err := v2.Lookup("x")
	require.NoError(t, err)
	*value = 5

	// First match was mutated, on the copy only.
	got, err := v2.Value("x")
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = v1.Value("x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFailedLookupsNeverClone(t *testing.T) {
	v1 := New[int]()
	v1.Push(10, "a")
	v2 := v1.Copy()

	before := v2.data

	_, err := v2.Lookup("missing")
	require.ErrorIs(t, err, ErrNameNotFound)

	_, err = v2.Index(7)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// Both failures happened before the detach step.
	assert.Same(t, before, v2.data)
	assert.True(t, v2.Shared())
}

func TestReadsNeverClone(t *testing.T) {
	v1 := New[int]()
	v1.Push(10, "a")
	v1.Push(20, "b")
	v2 := v1.Copy()

	before := v2.data

	_, err := v2.At(1)
	require.NoError(t, err)
	_, err = v2.Value("a")
	require.NoError(t, err)
	_, _ = v2.FirstIndex("b")
	_ = v2.Len()
	_ = v2.Empty()
	for range v2.All() {
	}

	assert.Same(t, before, v2.data)
	assert.True(t, v2.Shared())
}

func TestSharedCountTransitions(t *testing.T) {
	v1 := New[int]()
	v1.Push(1, "a")
	require.Equal(t, 1, *v1.count)

	v2 := v1.Copy()
	v3 := v1.Copy()
	require.Equal(t, 3, *v1.count)
	require.Same(t, v1.count, v2.count)
	require.Same(t, v1.count, v3.count)

	// One handle detaches: it becomes exclusive, the others keep sharing.
	v3.Push(2, "b")
	assert.Equal(t, 1, *v3.count)
	assert.Equal(t, 2, *v1.count)
	assert.True(t, v1.Shared())
	assert.False(t, v3.Shared())

	// The second detach leaves the last referrer exclusive again.
	v2.Push(3, "c")
	assert.Equal(t, 1, *v2.count)
	assert.Equal(t, 1, *v1.count)
	assert.False(t, v1.Shared())
}

func TestClear(t *testing.T) {
	t.Run("exclusive clear retains capacity", func(t *testing.T) {
		v := New[int]()
		for i := 0; i < 8; i++ {
			v.Push(i, "n")
		}
		capBefore := v.Cap()

		v.Clear()
		assert.Equal(t, 0, v.Len())
		assert.True(t, v.Empty())
		assert.Equal(t, capBefore, v.Cap())
	})

	t.Run("shared clear detaches first", func(t *testing.T) {
		v1 := New[int]()
		v1.Push(10, "a")
		v2 := v1.Copy()

		v2.Clear()
		assert.Equal(t, 0, v2.Len())
		assert.Equal(t, 1, v1.Len())
		assert.False(t, v1.Shared())
	})
}

func TestReserve(t *testing.T) {
	t.Run("grows capacity without changing size", func(t *testing.T) {
		v := New[int]()
		v.Push(1, "a")

		v.Reserve(64)
		assert.GreaterOrEqual(t, v.Cap(), 64)
		assert.Equal(t, 1, v.Len())

		rec, err := v.At(0)
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Value)
	})

	t.Run("never shrinks", func(t *testing.T) {
		v := New[int]()
		v.Reserve(64)
		capBefore := v.Cap()
		v.Reserve(8)
		assert.Equal(t, capBefore, v.Cap())
	})

	t.Run("detaches when shared", func(t *testing.T) {
		v1 := New[int]()
		v1.Push(1, "a")
		v2 := v1.Copy()

		v2.Reserve(64)
		assert.NotSame(t, v1.data, v2.data)
		assert.Less(t, v1.Cap(), 64)
	})
}

func TestErrorValues(t *testing.T) {
	v := New[string]()
	v.Push("one", "a")

	_, err := v.At(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "index 3")

	_, err = v.Value("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNameNotFound))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestPushKeepsSizeConsistent(t *testing.T) {
	// One record, one sequence, one append: there is no path on which the
	// value lands without its name or size runs ahead of the records.
	v := New[int]()
	for i := 0; i < 100; i++ {
		v.Push(i, "n")
		require.Equal(t, i+1, v.Len())
		rec, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, i, rec.Value)
		require.Equal(t, "n", rec.Name)
	}
}
