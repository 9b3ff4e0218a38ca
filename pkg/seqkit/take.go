package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// TakeCursor is an upstream cursor paired with the number of elements still allowed.
type TakeCursor[C comparable] struct {
	Base      C
	Remaining int
}

// TakeSeq yields at most N elements of its upstream.
type TakeSeq[E any, C comparable] struct {
	base ops[E, C]
	n    int
}

// Take returns the first n elements of s.
// Over an infinite sequence the result is sized,
// and over a random access sequence that is sized or infinite it is also bounded.
func Take[E any, C comparable](s Sequence[E, C], n int) *TakeSeq[E, C] {
	check.That(0 <= n, ErrInvalidArgument, "Take: negative count %d", n)
	return &TakeSeq[E, C]{base: opsOf(s), n: n}
}

func (t *TakeSeq[E, C]) Capabilities() Caps {
	var (
		bc   = t.base.caps
		caps = bc & (CapMultipass | CapBidirectional | CapRandomAccess | CapSwappable)
	)
	if bc.Has(CapSized) || bc.Has(CapInfinite) {
		caps |= CapSized
		if bc.Has(CapRandomAccess) {
			caps |= CapBounded
		}
	}
	if bc.Has(CapContiguous) {
		caps |= CapContiguous
	}
	return caps
}

func (t *TakeSeq[E, C]) First() TakeCursor[C] {
	return TakeCursor[C]{Base: t.base.first(), Remaining: t.n}
}

func (t *TakeSeq[E, C]) IsLast(cur TakeCursor[C]) bool {
	return cur.Remaining == 0 || t.base.isLast(cur.Base)
}

func (t *TakeSeq[E, C]) ReadAt(cur TakeCursor[C]) E {
	check.That(0 < cur.Remaining, ErrOutOfRange, "Take: read past %d elements", t.n)
	return t.base.readAt(cur.Base)
}

func (t *TakeSeq[E, C]) Inc(cur *TakeCursor[C]) {
	t.base.inc(&cur.Base)
	cur.Remaining--
}

func (t *TakeSeq[E, C]) Dec(cur *TakeCursor[C]) {
	t.base.dec(&cur.Base)
	cur.Remaining++
}

func (t *TakeSeq[E, C]) IncBy(cur *TakeCursor[C], offset int) {
	t.base.incBy(&cur.Base, offset)
	cur.Remaining -= offset
}

func (t *TakeSeq[E, C]) Distance(from, to TakeCursor[C]) int {
	return min(t.base.distance(from.Base, to.Base), from.Remaining-to.Remaining)
}

func (t *TakeSeq[E, C]) Size() int {
	if size, ok := t.base.sizeOrInfinite(); ok {
		return min(size, t.n)
	}
	return t.n
}

func (t *TakeSeq[E, C]) Last() TakeCursor[C] {
	if !t.Capabilities().Has(CapBounded) {
		unsupported(t, "Last")
	}
	size := t.Size()
	cur := t.base.first()
	t.base.incBy(&cur, size)
	return TakeCursor[C]{Base: cur, Remaining: t.n - size}
}

func (t *TakeSeq[E, C]) Data() []E {
	return t.base.dataSlice()[:t.Size()]
}

func (t *TakeSeq[E, C]) Swap(a, b TakeCursor[C]) { t.base.swap(a.Base, b.Base) }

func (t *TakeSeq[E, C]) WriteAt(cur TakeCursor[C], v E) {
	check.That(0 < cur.Remaining, ErrOutOfRange, "Take: write past %d elements", t.n)
	t.base.writeAt(cur.Base, v)
}

func (t *TakeSeq[E, C]) Iterate() Context[E] {
	var (
		inner     = Iterate(t.base.seq)
		remaining = t.n
	)
	return NewContext(func(pred func(E) bool) bool {
		if remaining == 0 {
			return true
		}
		var stopped bool
		inner.RunWhile(func(e E) bool {
			remaining--
			if !pred(e) {
				stopped = true
				return false
			}
			return 0 < remaining
		})
		return !stopped
	})
}

// DropSeq skips the first N elements of its upstream.
type DropSeq[E any, C comparable] struct {
	base ops[E, C]
	n    int
}

// Drop returns s without its first n elements.
// Dropping more elements than s has results in an empty sequence.
func Drop[E any, C comparable](s Sequence[E, C], n int) *DropSeq[E, C] {
	check.That(0 <= n, ErrInvalidArgument, "Drop: negative count %d", n)
	return &DropSeq[E, C]{base: opsOf(s), n: n}
}

func (d *DropSeq[E, C]) Capabilities() Caps { return d.base.caps }

func (d *DropSeq[E, C]) First() C {
	cur := d.base.first()
	d.base.advance(&cur, d.n)
	return cur
}

func (d *DropSeq[E, C]) IsLast(cur C) bool { return d.base.isLast(cur) }

func (d *DropSeq[E, C]) ReadAt(cur C) E { return d.base.readAt(cur) }

func (d *DropSeq[E, C]) Inc(cur *C) { d.base.inc(cur) }

func (d *DropSeq[E, C]) Dec(cur *C) { d.base.dec(cur) }

func (d *DropSeq[E, C]) IncBy(cur *C, offset int) { d.base.incBy(cur, offset) }

func (d *DropSeq[E, C]) Distance(from, to C) int { return d.base.distance(from, to) }

func (d *DropSeq[E, C]) Last() C { return d.base.last() }

func (d *DropSeq[E, C]) Size() int { return max(d.base.size()-d.n, 0) }

func (d *DropSeq[E, C]) Data() []E {
	data := d.base.dataSlice()
	return data[min(d.n, len(data)):]
}

func (d *DropSeq[E, C]) Swap(a, b C) { d.base.swap(a, b) }

func (d *DropSeq[E, C]) WriteAt(cur C, v E) { d.base.writeAt(cur, v) }

// TakeWhileSeq yields the leading elements of its upstream that satisfy a predicate.
type TakeWhileSeq[E any, C comparable] struct {
	base ops[E, C]
	pred func(E) bool
}

// TakeWhile returns the elements of s up to, but not including, the first one for which pred fails.
func TakeWhile[E any, C comparable](s Sequence[E, C], pred func(E) bool) *TakeWhileSeq[E, C] {
	return &TakeWhileSeq[E, C]{base: opsOf(s), pred: pred}
}

func (t *TakeWhileSeq[E, C]) Capabilities() Caps {
	return t.base.caps & (CapMultipass | CapBidirectional)
}

func (t *TakeWhileSeq[E, C]) First() C { return t.base.first() }

func (t *TakeWhileSeq[E, C]) IsLast(cur C) bool {
	return t.base.isLast(cur) || !t.pred(t.base.readAt(cur))
}

func (t *TakeWhileSeq[E, C]) ReadAt(cur C) E { return t.base.readAt(cur) }

func (t *TakeWhileSeq[E, C]) Inc(cur *C) { t.base.inc(cur) }

func (t *TakeWhileSeq[E, C]) Dec(cur *C) { t.base.dec(cur) }

func (t *TakeWhileSeq[E, C]) Iterate() Context[E] {
	var (
		inner = Iterate(t.base.seq)
		ended bool
	)
	return NewContext(func(pred func(E) bool) bool {
		if ended {
			return true
		}
		var stopped bool
		inner.RunWhile(func(e E) bool {
			if !t.pred(e) {
				ended = true
				return false
			}
			if !pred(e) {
				stopped = true
				return false
			}
			return true
		})
		return !stopped
	})
}

// DropWhileSeq skips the leading elements of its upstream that satisfy a predicate.
type DropWhileSeq[E any, C comparable] struct {
	base ops[E, C]
	pred func(E) bool
}

// DropWhile returns s from the first element for which pred fails.
func DropWhile[E any, C comparable](s Sequence[E, C], pred func(E) bool) *DropWhileSeq[E, C] {
	return &DropWhileSeq[E, C]{base: opsOf(s), pred: pred}
}

func (d *DropWhileSeq[E, C]) Capabilities() Caps {
	return d.base.caps &^ (CapSized | CapContiguous)
}

func (d *DropWhileSeq[E, C]) First() C {
	cur := d.base.first()
	for !d.base.isLast(cur) && d.pred(d.base.readAt(cur)) {
		d.base.inc(&cur)
	}
	return cur
}

func (d *DropWhileSeq[E, C]) IsLast(cur C) bool { return d.base.isLast(cur) }

func (d *DropWhileSeq[E, C]) ReadAt(cur C) E { return d.base.readAt(cur) }

func (d *DropWhileSeq[E, C]) Inc(cur *C) { d.base.inc(cur) }

func (d *DropWhileSeq[E, C]) Dec(cur *C) { d.base.dec(cur) }

func (d *DropWhileSeq[E, C]) IncBy(cur *C, offset int) { d.base.incBy(cur, offset) }

func (d *DropWhileSeq[E, C]) Distance(from, to C) int { return d.base.distance(from, to) }

func (d *DropWhileSeq[E, C]) Last() C { return d.base.last() }

func (d *DropWhileSeq[E, C]) Size() int { return d.base.distance(d.First(), d.base.last()) }
