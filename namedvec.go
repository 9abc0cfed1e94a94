package namedvec

import "fmt"

// Record is one element of a Vector: a value together with its name.
// Names need not be unique; name lookups resolve to the record inserted
// earliest among those sharing the name.
type Record[T any] struct {
	Value T
	Name  string
}

// Vector is a handle onto a block of records. Handles created with Copy
// share their block; the shared count decides whether a mutation may touch
// the block directly or must clone it first.
type Vector[T any] struct {
	data  *block[T]
	count *int
}

// New creates an empty vector with exclusive storage.
func New[T any]() *Vector[T] {
	count := 1
	return &Vector[T]{data: newBlock[T](), count: &count}
}

// Copy returns a new handle sharing this handle's storage. O(1): no record
// is copied until one of the sharing handles mutates.
func (v *Vector[T]) Copy() *Vector[T] {
	*v.count++
	return &Vector[T]{data: v.data, count: v.count}
}

// detach guarantees exclusive ownership of the block before a mutation.
// An exclusive handle passes through untouched. A shared handle clones the
// block, releases its claim on the old one and rebinds to the clone.
// Every mutating operation calls detach exactly once, up front; per-record
// work inside an operation never re-detaches.
func (v *Vector[T]) detach() {
	if *v.count == 1 {
		return
	}
	cloned := v.data.clone()
	*v.count--
	count := 1
	v.data = cloned
	v.count = &count
}

// Shared reports whether this handle's storage is currently referenced by
// more than one handle.
func (v *Vector[T]) Shared() bool {
	return *v.count > 1
}

// Push appends one record. Detaches first when shared.
func (v *Vector[T]) Push(value T, name string) {
	v.detach()
	v.data.append(value, name)
}

// At returns a copy of the record at index i. Read-only: never detaches.
func (v *Vector[T]) At(i int) (Record[T], error) {
	if i < 0 || i >= v.data.size() {
		return Record[T]{}, fmt.Errorf("at index %d with size %d: %w", i, v.data.size(), ErrIndexOutOfRange)
	}
	return *v.data.at(i), nil
}

// Index returns direct access to the record at index i; both the value and
// the name may be assigned through it. The bounds check runs before the
// detach, so an out-of-range index never pays for a clone.
func (v *Vector[T]) Index(i int) (*Record[T], error) {
	if i < 0 || i >= v.data.size() {
		return nil, fmt.Errorf("at index %d with size %d: %w", i, v.data.size(), ErrIndexOutOfRange)
	}
	v.detach()
	return v.data.at(i), nil
}

// Value returns a copy of the value of the first record named name.
// Read-only: never detaches.
func (v *Vector[T]) Value(name string) (T, error) {
	i, ok := v.data.findByName(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("lookup %q: %w", name, ErrNameNotFound)
	}
	return v.data.at(i).Value, nil
}

// Lookup returns direct access to the value of the first record named
// name. The existence check runs before the detach, so a failed lookup
// never pays for a clone.
func (v *Vector[T]) Lookup(name string) (*T, error) {
	i, ok := v.data.findByName(name)
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrNameNotFound)
	}
	v.detach()
	return &v.data.at(i).Value, nil
}

// FirstIndex returns the position of the first record named name.
func (v *Vector[T]) FirstIndex(name string) (int, bool) {
	return v.data.findByName(name)
}

// Len returns the number of records.
func (v *Vector[T]) Len() int {
	return v.data.size()
}

// Empty reports whether the vector holds no records.
func (v *Vector[T]) Empty() bool {
	return v.data.empty()
}

// Cap returns the current record capacity.
func (v *Vector[T]) Cap() int {
	return v.data.capacity()
}

// Reserve ensures capacity for at least n records. Growing the backing
// array is a structural mutation, so a shared handle detaches first.
func (v *Vector[T]) Reserve(n int) {
	v.detach()
	v.data.reserve(n)
}

// Clear removes every record; capacity is retained. A shared handle
// detaches first, which clones the block only to immediately empty the
// clone. Rebinding to a fresh block instead would avoid that copy; the
// clone is accepted to keep every mutating path on the same
// detach-then-delegate shape.
func (v *Vector[T]) Clear() {
	v.detach()
	v.data.clear()
}
