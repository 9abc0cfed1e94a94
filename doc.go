// Package namedvec provides a generic, name-addressable sequence with
// copy-on-write handles.
//
// A Vector stores records in insertion order, each pairing a value with a
// (possibly non-unique) name. Positional access is O(1); name lookup is a
// linear scan that resolves to the first record carrying the name.
//
// Copying a Vector with Copy is O(1) and allocates nothing: both handles
// share the same storage block until one of them mutates, at which point
// that handle clones the block for itself and applies the mutation there.
// The other handle keeps observing the original records.
//
// Standing in for the usual sequence-container member types: Record[T] is
// the element type, *Record[T] and *T are the mutable reference forms
// handed out by Index and Lookup, Iterator[T] and the iter.Seq2 values
// returned by All and Mutable are the iterator forms, and plain int serves
// as both size and difference type.
//
// A Vector is not safe for concurrent use. Any number of goroutines may
// read through handles that share a block, but mutation requires external
// synchronization across every handle sharing that block.
package namedvec
