// Package seqkit implements a lazily evaluated sequence protocol.
//
// # Summary
//
// A Sequence is anything that can hand out a cursor to its first element,
// tell whether a cursor is past the end, read the element under a cursor and advance a cursor.
// Cursors are plain comparable values, they carry no data beyond what is needed to resume traversal,
// and they are only meaningful together with the sequence that produced them.
//
// On top of these four primitives, adaptors (Map, Filter, Zip, Chain, CartesianProduct, Flatten, ...)
// compose new sequences without materialising intermediate results,
// and algorithms (Fold, Find, Sum, Sort, ...) consume them.
//
// # Capabilities
//
// Sequences can do more than the minimum: step backwards (Bidirectional),
// jump in constant time (RandomAccess), expose their end cursor (Bounded),
// report their size (Sized) or hand out their storage (Contiguous).
// Adaptors forward exactly the capabilities their upstream supports,
// and simulate a few where they can (Take over an infinite sequence is sized).
// Composing an adaptor with a sequence that lacks a required capability is rejected
// when the adaptor is constructed, with ErrUnsupported.
//
// # Iteration contexts
//
// Next to the pull based cursor protocol there is a push based one:
// Iterate returns a Context that runs a callback over the elements until told to stop.
// The two models interoperate in both directions, and the Go range-over-func protocol is built on Context.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Cursor_(databases)
package seqkit

// Sequence is the minimal cursor protocol every source implements.
type Sequence[E any, C comparable] interface {
	// First returns the cursor of the first element.
	// For an empty sequence, IsLast reports true for the returned cursor.
	First() C
	// IsLast reports whether the cursor is past the last element.
	IsLast(cur C) bool
	// ReadAt returns the element under the cursor.
	// Reading through a cursor for which IsLast is true is a precondition violation.
	ReadAt(cur C) E
	// Inc advances the cursor by one position.
	Inc(cur *C)
}

// Bidirectional sequences can move their cursors backwards.
type Bidirectional[E any, C comparable] interface {
	Sequence[E, C]
	Dec(cur *C)
}

// RandomAccess sequences can jump and measure in constant time.
type RandomAccess[E any, C comparable] interface {
	Bidirectional[E, C]
	// IncBy moves the cursor by offset positions, which can be negative.
	IncBy(cur *C, offset int)
	// Distance returns the number of Inc calls needed to move from to to.
	Distance(from, to C) int
}

// Bounded sequences can produce their past-the-end cursor in constant time.
type Bounded[E any, C comparable] interface {
	Sequence[E, C]
	Last() C
}

// Sized sequences know their element count in constant time.
type Sized[E any, C comparable] interface {
	Sequence[E, C]
	Size() int
}

// Contiguous sequences store their elements in a Go slice.
type Contiguous[E any, C comparable] interface {
	RandomAccess[E, C]
	Last() C
	Size() int
	Data() []E
}

// Swappable sequences can exchange the elements under two cursors.
type Swappable[E any, C comparable] interface {
	Sequence[E, C]
	Swap(a, b C)
}

// Writable sequences can replace the element under a cursor.
// Views over a writable sequence (Take, Drop, Slice, Stride, Reverse) write through to it.
type Writable[E any, C comparable] interface {
	Sequence[E, C]
	WriteAt(cur C, v E)
}

// Capable sequences declare their capabilities explicitly.
// Adaptors implement every method of the protocol,
// and Capabilities tells which of them are backed by the upstream sequence.
type Capable interface {
	Capabilities() Caps
}
