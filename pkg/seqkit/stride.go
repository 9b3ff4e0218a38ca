package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// StrideCursor is an upstream cursor plus the part of the last step that could not be taken
// because the upstream ended first.
// Keeping the shortfall makes stepping back from the end land on the right element,
// and keeps Distance exact.
type StrideCursor[C comparable] struct {
	Cur     C
	Missing int
}

// stepper is the cursor arithmetic shared by Stride and Chunk.
type stepper[E any, C comparable] struct {
	base ops[E, C]
	k    int
}

func (s *stepper[E, C]) caps() Caps {
	caps := s.base.caps & (CapMultipass | CapBidirectional | CapRandomAccess | CapSized | CapInfinite)
	if s.base.has(CapBounded | CapSized) {
		caps |= CapBounded
	}
	return caps
}

func (s *stepper[E, C]) first() StrideCursor[C] {
	return StrideCursor[C]{Cur: s.base.first()}
}

func (s *stepper[E, C]) isLast(cur StrideCursor[C]) bool { return s.base.isLast(cur.Cur) }

func (s *stepper[E, C]) inc(cur *StrideCursor[C]) {
	cur.Missing = s.base.advance(&cur.Cur, s.k)
}

func (s *stepper[E, C]) dec(cur *StrideCursor[C]) {
	s.base.advance(&cur.Cur, cur.Missing-s.k)
	cur.Missing = 0
}

func (s *stepper[E, C]) incBy(cur *StrideCursor[C], offset int) {
	switch {
	case 0 < offset:
		cur.Missing = s.base.advance(&cur.Cur, offset*s.k) % s.k
	case offset < 0:
		s.base.advance(&cur.Cur, offset*s.k+cur.Missing)
		cur.Missing = 0
	}
}

func (s *stepper[E, C]) distance(from, to StrideCursor[C]) int {
	return (s.base.distance(from.Cur, to.Cur) - from.Missing + to.Missing) / s.k
}

func (s *stepper[E, C]) last() StrideCursor[C] {
	size := s.base.size()
	return StrideCursor[C]{Cur: s.base.last(), Missing: (s.k - size%s.k) % s.k}
}

func (s *stepper[E, C]) size() int {
	size := s.base.size()
	n := size / s.k
	if size%s.k != 0 {
		n++
	}
	return n
}

// StrideSeq yields every k-th element of its upstream.
type StrideSeq[E any, C comparable] struct {
	stepper[E, C]
}

// Stride returns the elements of s at positions 0, k, 2k, ...
func Stride[E any, C comparable](s Sequence[E, C], k int) *StrideSeq[E, C] {
	check.That(0 < k, ErrInvalidArgument, "Stride: step must be positive, got %d", k)
	return &StrideSeq[E, C]{stepper: stepper[E, C]{base: opsOf(s), k: k}}
}

func (s *StrideSeq[E, C]) Capabilities() Caps { return s.caps() }

func (s *StrideSeq[E, C]) First() StrideCursor[C] { return s.first() }

func (s *StrideSeq[E, C]) IsLast(cur StrideCursor[C]) bool { return s.isLast(cur) }

func (s *StrideSeq[E, C]) ReadAt(cur StrideCursor[C]) E { return s.base.readAt(cur.Cur) }

func (s *StrideSeq[E, C]) WriteAt(cur StrideCursor[C], v E) { s.base.writeAt(cur.Cur, v) }

func (s *StrideSeq[E, C]) Inc(cur *StrideCursor[C]) { s.inc(cur) }

func (s *StrideSeq[E, C]) Dec(cur *StrideCursor[C]) { s.dec(cur) }

func (s *StrideSeq[E, C]) IncBy(cur *StrideCursor[C], offset int) { s.incBy(cur, offset) }

func (s *StrideSeq[E, C]) Distance(from, to StrideCursor[C]) int { return s.distance(from, to) }

func (s *StrideSeq[E, C]) Last() StrideCursor[C] { return s.last() }

func (s *StrideSeq[E, C]) Size() int { return s.size() }

func (s *StrideSeq[E, C]) Iterate() Context[E] {
	var (
		inner = Iterate(s.base.seq)
		skip  int
	)
	return NewContext(func(pred func(E) bool) bool {
		return runAll(inner, func(e E) bool {
			if 0 < skip {
				skip--
				return true
			}
			skip = s.k - 1
			return pred(e)
		})
	})
}

// ChunkSeq splits its upstream into consecutive runs of n elements; the final run may be shorter.
type ChunkSeq[E any, C comparable] struct {
	stepper[E, C]
}

// Chunk returns the runs of n consecutive elements of s.
// The runs are views over s, no element is copied.
func Chunk[E any, C comparable](s Sequence[E, C], n int) *ChunkSeq[E, C] {
	check.That(0 < n, ErrInvalidArgument, "Chunk: size must be positive, got %d", n)
	c := &ChunkSeq[E, C]{stepper: stepper[E, C]{base: opsOf(s), k: n}}
	require(&c.base, CapMultipass, "Chunk")
	return c
}

func (c *ChunkSeq[E, C]) Capabilities() Caps { return c.caps() }

func (c *ChunkSeq[E, C]) First() StrideCursor[C] { return c.first() }

func (c *ChunkSeq[E, C]) IsLast(cur StrideCursor[C]) bool { return c.isLast(cur) }

func (c *ChunkSeq[E, C]) ReadAt(cur StrideCursor[C]) *TakeSeq[E, C] {
	return Take[E, C](SliceFrom(c.base.seq, cur.Cur), c.k)
}

func (c *ChunkSeq[E, C]) Inc(cur *StrideCursor[C]) { c.inc(cur) }

func (c *ChunkSeq[E, C]) Dec(cur *StrideCursor[C]) { c.dec(cur) }

func (c *ChunkSeq[E, C]) IncBy(cur *StrideCursor[C], offset int) { c.incBy(cur, offset) }

func (c *ChunkSeq[E, C]) Distance(from, to StrideCursor[C]) int { return c.distance(from, to) }

func (c *ChunkSeq[E, C]) Last() StrideCursor[C] { return c.last() }

func (c *ChunkSeq[E, C]) Size() int { return c.size() }

func (c *ChunkSeq[E, C]) Iterate() Context[*TakeSeq[E, C]] {
	cur := c.first()
	return NewContext(func(pred func(*TakeSeq[E, C]) bool) bool {
		for !c.isLast(cur) {
			chunk := c.ReadAt(cur)
			c.inc(&cur)
			if !pred(chunk) {
				return false
			}
		}
		return true
	})
}

// SubrangeSeq is the part of its upstream between two cursors.
type SubrangeSeq[E any, C comparable] struct {
	base  ops[E, C]
	from  C
	to    C
	hasTo bool
}

// Slice returns the elements of s from the cursor from up to, but not including, the cursor to.
func Slice[E any, C comparable](s Sequence[E, C], from, to C) *SubrangeSeq[E, C] {
	return &SubrangeSeq[E, C]{base: opsOf(s), from: from, to: to, hasTo: true}
}

// SliceFrom returns the elements of s from the cursor from to the end.
func SliceFrom[E any, C comparable](s Sequence[E, C], from C) *SubrangeSeq[E, C] {
	return &SubrangeSeq[E, C]{base: opsOf(s), from: from}
}

func (s *SubrangeSeq[E, C]) Capabilities() Caps {
	caps := s.base.caps &^ CapSized
	if s.hasTo {
		caps |= CapBounded
		caps &^= CapInfinite
	}
	return caps
}

func (s *SubrangeSeq[E, C]) First() C { return s.from }

func (s *SubrangeSeq[E, C]) IsLast(cur C) bool {
	return (s.hasTo && cur == s.to) || s.base.isLast(cur)
}

func (s *SubrangeSeq[E, C]) ReadAt(cur C) E { return s.base.readAt(cur) }

func (s *SubrangeSeq[E, C]) Inc(cur *C) { s.base.inc(cur) }

func (s *SubrangeSeq[E, C]) Dec(cur *C) { s.base.dec(cur) }

func (s *SubrangeSeq[E, C]) IncBy(cur *C, offset int) { s.base.incBy(cur, offset) }

func (s *SubrangeSeq[E, C]) Distance(from, to C) int { return s.base.distance(from, to) }

func (s *SubrangeSeq[E, C]) Last() C {
	if s.hasTo {
		return s.to
	}
	return s.base.last()
}

func (s *SubrangeSeq[E, C]) Size() int { return s.base.distance(s.from, s.Last()) }

func (s *SubrangeSeq[E, C]) Data() []E {
	var (
		data = s.base.dataSlice()
		from = s.base.distance(s.base.first(), s.from)
	)
	return data[from : from+s.Size()]
}

func (s *SubrangeSeq[E, C]) Swap(a, b C) { s.base.swap(a, b) }

func (s *SubrangeSeq[E, C]) WriteAt(cur C, v E) { s.base.writeAt(cur, v) }

type ChunkByCursor[C comparable] struct {
	From C
	To   C
}

// ChunkBySeq splits its upstream into runs of adjacent elements related by a predicate.
type ChunkBySeq[E any, C comparable] struct {
	base ops[E, C]
	pred func(a, b E) bool
}

// ChunkBy starts a new run wherever pred fails for two adjacent elements,
// e.g. with equality as pred it groups equal neighbours.
func ChunkBy[E any, C comparable](s Sequence[E, C], pred func(a, b E) bool) *ChunkBySeq[E, C] {
	c := &ChunkBySeq[E, C]{base: opsOf(s), pred: pred}
	require(&c.base, CapMultipass, "ChunkBy")
	return c
}

func (c *ChunkBySeq[E, C]) Capabilities() Caps {
	return c.base.caps & (CapMultipass | CapBidirectional | CapBounded)
}

func (c *ChunkBySeq[E, C]) findNext(from C) C {
	if c.base.isLast(from) {
		return from
	}
	prev, cur := from, from
	c.base.inc(&cur)
	for !c.base.isLast(cur) && c.pred(c.base.readAt(prev), c.base.readAt(cur)) {
		prev = cur
		c.base.inc(&cur)
	}
	return cur
}

func (c *ChunkBySeq[E, C]) findPrev(to C) C {
	first := c.base.first()
	cur := to
	c.base.dec(&cur)
	for cur != first {
		prev := cur
		c.base.dec(&prev)
		if !c.pred(c.base.readAt(prev), c.base.readAt(cur)) {
			break
		}
		cur = prev
	}
	return cur
}

func (c *ChunkBySeq[E, C]) First() ChunkByCursor[C] {
	from := c.base.first()
	return ChunkByCursor[C]{From: from, To: c.findNext(from)}
}

func (c *ChunkBySeq[E, C]) IsLast(cur ChunkByCursor[C]) bool { return c.base.isLast(cur.From) }

func (c *ChunkBySeq[E, C]) ReadAt(cur ChunkByCursor[C]) *SubrangeSeq[E, C] {
	return Slice(c.base.seq, cur.From, cur.To)
}

func (c *ChunkBySeq[E, C]) Inc(cur *ChunkByCursor[C]) {
	cur.From = cur.To
	cur.To = c.findNext(cur.To)
}

func (c *ChunkBySeq[E, C]) Dec(cur *ChunkByCursor[C]) {
	cur.To = cur.From
	cur.From = c.findPrev(cur.From)
}

func (c *ChunkBySeq[E, C]) Last() ChunkByCursor[C] {
	last := c.base.last()
	return ChunkByCursor[C]{From: last, To: last}
}
