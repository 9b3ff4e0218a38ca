package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// ReadOnlySeq forwards every capability of its upstream except the mutating ones.
type ReadOnlySeq[E any, C comparable] struct {
	base ops[E, C]
}

// ReadOnly hides WriteAt, Swap and Data of s,
// so the elements cannot be modified through the returned sequence.
// A contiguous s becomes plain random access.
func ReadOnly[E any, C comparable](s Sequence[E, C]) *ReadOnlySeq[E, C] {
	return &ReadOnlySeq[E, C]{base: opsOf(s)}
}

func (r *ReadOnlySeq[E, C]) Capabilities() Caps {
	return r.base.caps &^ (CapContiguous | CapSwappable)
}

func (r *ReadOnlySeq[E, C]) First() C { return r.base.first() }

func (r *ReadOnlySeq[E, C]) IsLast(cur C) bool { return r.base.isLast(cur) }

func (r *ReadOnlySeq[E, C]) ReadAt(cur C) E { return r.base.readAt(cur) }

func (r *ReadOnlySeq[E, C]) Inc(cur *C) { r.base.inc(cur) }

func (r *ReadOnlySeq[E, C]) Dec(cur *C) { r.base.dec(cur) }

func (r *ReadOnlySeq[E, C]) IncBy(cur *C, offset int) { r.base.incBy(cur, offset) }

func (r *ReadOnlySeq[E, C]) Distance(from, to C) int { return r.base.distance(from, to) }

func (r *ReadOnlySeq[E, C]) Last() C { return r.base.last() }

func (r *ReadOnlySeq[E, C]) Size() int { return r.base.size() }

func (r *ReadOnlySeq[E, C]) Iterate() Context[E] { return Iterate(r.base.seq) }

// CursorsSeq yields the cursors of its upstream instead of its elements.
type CursorsSeq[E any, C comparable] struct {
	base ops[E, C]
}

// Cursors returns the cursors of s in order.
// s has to be multipass, so that the cursors stay valid.
func Cursors[E any, C comparable](s Sequence[E, C]) *CursorsSeq[E, C] {
	c := &CursorsSeq[E, C]{base: opsOf(s)}
	require(&c.base, CapMultipass, "Cursors")
	return c
}

func (c *CursorsSeq[E, C]) Capabilities() Caps {
	return c.base.caps &^ (CapContiguous | CapSwappable)
}

func (c *CursorsSeq[E, C]) First() C { return c.base.first() }

func (c *CursorsSeq[E, C]) IsLast(cur C) bool { return c.base.isLast(cur) }

func (c *CursorsSeq[E, C]) ReadAt(cur C) C {
	check.That(!c.base.isLast(cur), ErrOutOfRange, "Cursors: read past the last cursor")
	return cur
}

func (c *CursorsSeq[E, C]) Inc(cur *C) { c.base.inc(cur) }

func (c *CursorsSeq[E, C]) Dec(cur *C) { c.base.dec(cur) }

func (c *CursorsSeq[E, C]) IncBy(cur *C, offset int) { c.base.incBy(cur, offset) }

func (c *CursorsSeq[E, C]) Distance(from, to C) int { return c.base.distance(from, to) }

func (c *CursorsSeq[E, C]) Last() C { return c.base.last() }

func (c *CursorsSeq[E, C]) Size() int { return c.base.size() }
