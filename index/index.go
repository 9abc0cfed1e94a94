// Package index provides a memoized name-lookup view over a namedvec
// Vector.
//
// First-match name lookup on a Vector is a linear scan. For read-heavy
// workloads that query the same names repeatedly, Index caches resolved
// positions in an LRU so repeated lookups skip the scan.
package index

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/namedvec"
)

// DefaultCacheSize is used when New is given a non-positive size.
const DefaultCacheSize = 256

// Index memoizes first-match name lookups over a frozen view of a Vector.
//
// The view is taken with Vector.Copy, so building an Index is O(1). The
// container only ever mutates records through an exclusive handle and the
// Index never mutates its own, so the records behind an Index cannot
// change: cached positions stay valid for the Index's lifetime, even while
// the source vector keeps being mutated.
//
// An Index is not safe for concurrent use.
type Index[T any] struct {
	view  *namedvec.Vector[T]
	cache *lru.Cache[string, int]

	// Metrics
	hits   uint64
	misses uint64
}

// New builds an Index over the vector's current records. size bounds the
// number of memoized names.
func New[T any](vec *namedvec.Vector[T], size int) (*Index[T], error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, err
	}

	return &Index[T]{
		view:  vec.Copy(),
		cache: cache,
	}, nil
}

// FirstIndex returns the position of the first record named name.
// Resolved positions are memoized; absent names are not, since the view
// cannot grow a record it lacked when the Index was built.
func (x *Index[T]) FirstIndex(name string) (int, bool) {
	if i, ok := x.cache.Get(name); ok {
		x.hits++
		return i, true
	}

	x.misses++
	i, ok := x.view.FirstIndex(name)
	if !ok {
		return 0, false
	}

	x.cache.Add(name, i)
	return i, true
}

// Value returns the value of the first record named name.
func (x *Index[T]) Value(name string) (T, error) {
	i, ok := x.FirstIndex(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("lookup %q: %w", name, namedvec.ErrNameNotFound)
	}

	rec, err := x.view.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return rec.Value, nil
}

// Len returns the number of records behind the view.
func (x *Index[T]) Len() int {
	return x.view.Len()
}

// Metrics returns the cache hit and miss counts.
func (x *Index[T]) Metrics() (hits, misses uint64) {
	return x.hits, x.misses
}
