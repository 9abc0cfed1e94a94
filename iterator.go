package namedvec

import "iter"

// Iterator provides read-only forward traversal over a vector's records in
// insertion order.
// Usage:
//
//	it := v.Iter()
//	for it.Next() {
//	    rec := it.Record()
//	    // use rec
//	}
type Iterator[T any] struct {
	data *block[T]
	pos  int
}

// Iter returns a read-only iterator positioned before the first record.
// Obtaining or consuming it never detaches.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{data: v.data, pos: -1}
}

// Next advances the iterator. Returns false once the records are
// exhausted.
func (it *Iterator[T]) Next() bool {
	if it.pos+1 >= it.data.size() {
		return false
	}
	it.pos++
	return true
}

// Record returns a copy of the current record. Only valid after Next has
// returned true.
func (it *Iterator[T]) Record() Record[T] {
	return *it.data.at(it.pos)
}

// Index returns the position of the current record.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// All returns a read-only traversal of (index, record) pairs in insertion
// order. Obtaining or consuming it never detaches.
func (v *Vector[T]) All() iter.Seq2[int, Record[T]] {
	b := v.data
	return func(yield func(int, Record[T]) bool) {
		for i := range b.records {
			if !yield(i, b.records[i]) {
				return
			}
		}
	}
}

// Mutable returns a traversal handing out direct record access. The handle
// detaches once, here, before the first record is yielded; visiting every
// record of a shared vector costs at most one clone, not one per record.
func (v *Vector[T]) Mutable() iter.Seq2[int, *Record[T]] {
	v.detach()
	b := v.data
	return func(yield func(int, *Record[T]) bool) {
		for i := range b.records {
			if !yield(i, &b.records[i]) {
				return
			}
		}
	}
}
