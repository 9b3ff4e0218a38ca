package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/pkg/optional"
)

// Next returns the cursor offset positions after cur.
// A negative offset needs a bidirectional sequence.
func Next[E any, C comparable](s Sequence[E, C], cur C, offset int) C {
	o := opsOf(s)
	o.incBy(&cur, offset)
	return cur
}

// Prev returns the cursor before cur.
func Prev[E any, C comparable](s Sequence[E, C], cur C) C {
	o := opsOf(s)
	o.dec(&cur)
	return cur
}

// Advance moves cur by offset, stopping at the end of the sequence,
// and returns how many positions could not be taken.
func Advance[E any, C comparable](s Sequence[E, C], cur *C, offset int) int {
	o := opsOf(s)
	return o.advance(cur, offset)
}

// Distance returns the number of positions between from and to.
// Without random access it walks from from until it reaches to.
func Distance[E any, C comparable](s Sequence[E, C], from, to C) int {
	o := opsOf(s)
	return o.distance(from, to)
}

// Size returns the element count of a sized sequence.
func Size[E any, C comparable](s Sequence[E, C]) int {
	o := opsOf(s)
	return o.size()
}

// Count returns the number of elements, walking the sequence when it is not sized.
// Counting an infinite sequence is rejected.
func Count[E any, C comparable](s Sequence[E, C]) int {
	o := opsOf(s)
	if o.has(CapInfinite) {
		unsupported(s, "Count")
	}
	if o.sized != nil || (o.ra != nil && o.bounded != nil) {
		return o.size()
	}
	var n int
	for cur := o.first(); !o.isLast(cur); o.inc(&cur) {
		n++
	}
	return n
}

func IsEmpty[E any, C comparable](s Sequence[E, C]) bool {
	o := opsOf(s)
	if o.sized != nil {
		return o.size() == 0
	}
	return o.isLast(o.first())
}

// Last returns the past-the-end cursor of a bounded sequence.
func Last[E any, C comparable](s Sequence[E, C]) C {
	o := opsOf(s)
	return o.last()
}

// Data returns the backing storage of a contiguous sequence.
func Data[E any, C comparable](s Sequence[E, C]) []E {
	o := opsOf(s)
	return o.dataSlice()
}

// Read is the checked form of ReadAt.
func Read[E any, C comparable](s Sequence[E, C], cur C) E {
	check.That(!s.IsLast(cur), ErrOutOfRange, "Read: %T cursor is past the end", s)
	return s.ReadAt(cur)
}

// At returns the element at the given index.
func At[E any, C comparable](s Sequence[E, C], index int) E {
	check.That(0 <= index, ErrOutOfRange, "At(%d)", index)
	o := opsOf(s)
	cur := o.first()
	if short := o.advance(&cur, index); short != 0 || o.isLast(cur) {
		check.Fail(ErrOutOfRange, "At(%d) on %T", index, s)
	}
	return o.readAt(cur)
}

// Front returns the first element, if any.
func Front[E any, C comparable](s Sequence[E, C]) optional.Optional[E] {
	cur := s.First()
	if s.IsLast(cur) {
		return optional.None[E]()
	}
	return optional.Some(s.ReadAt(cur))
}

// Back returns the last element of a bidirectional bounded sequence, if any.
func Back[E any, C comparable](s Sequence[E, C]) optional.Optional[E] {
	o := opsOf(s)
	require(&o, CapBidirectional|CapBounded, "Back")
	if o.isLast(o.first()) {
		return optional.None[E]()
	}
	cur := o.last()
	o.dec(&cur)
	return optional.Some(o.readAt(cur))
}
