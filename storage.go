package namedvec

// block is the storage behind one or more Vector handles. It owns the
// record sequence and nothing else: which handles reference it, and how
// many, is bookkeeping that lives entirely on the handle side.
type block[T any] struct {
	records []Record[T]
}

func newBlock[T any]() *block[T] {
	return &block[T]{}
}

func (b *block[T]) size() int {
	return len(b.records)
}

func (b *block[T]) empty() bool {
	return len(b.records) == 0
}

func (b *block[T]) capacity() int {
	return cap(b.records)
}

// append inserts one record at the end. A record is a single slice element,
// so the insert is all-or-nothing: either the grown slice is installed with
// the record in place, or nothing observable changed.
func (b *block[T]) append(value T, name string) {
	b.records = append(b.records, Record[T]{Value: value, Name: name})
}

// at returns the record at index i. Callers bounds-check first.
func (b *block[T]) at(i int) *Record[T] {
	return &b.records[i]
}

// findByName returns the position of the first record whose name equals
// name, scanning in insertion order.
func (b *block[T]) findByName(name string) (int, bool) {
	for i := range b.records {
		if b.records[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// reserve ensures capacity for at least n records. Size and record identity
// are untouched; capacity never shrinks. The existing records are only
// abandoned once the grown backing array holds them all.
func (b *block[T]) reserve(n int) {
	if n <= cap(b.records) {
		return
	}
	grown := make([]Record[T], len(b.records), n)
	copy(grown, b.records)
	b.records = grown
}

// clear drops every record. Capacity is retained, so refilling after a
// clear does not reallocate.
func (b *block[T]) clear() {
	b.records = b.records[:0]
}

// clone returns a deep copy of the block. The source is only read; the
// clone starts out referenced by nobody.
func (b *block[T]) clone() *block[T] {
	cloned := &block[T]{
		records: make([]Record[T], len(b.records)),
	}
	copy(cloned.records, b.records)
	return cloned
}
