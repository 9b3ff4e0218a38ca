package seqkit

type ReverseCursor[C comparable] struct {
	Base C
}

// ReverseSeq walks its upstream from the back.
// Its cursors point one past the element they read, so the upstream's Last is the first position.
type ReverseSeq[E any, C comparable] struct {
	base ops[E, C]
}

// Reverse returns the elements of s in reverse order.
// s has to be bidirectional and bounded.
func Reverse[E any, C comparable](s Sequence[E, C]) *ReverseSeq[E, C] {
	r := &ReverseSeq[E, C]{base: opsOf(s)}
	require(&r.base, CapBidirectional|CapBounded, "Reverse")
	return r
}

func (r *ReverseSeq[E, C]) Capabilities() Caps {
	return r.base.caps & (CapMultipass | CapBidirectional | CapRandomAccess | CapBounded | CapSized | CapSwappable)
}

func (r *ReverseSeq[E, C]) First() ReverseCursor[C] { return ReverseCursor[C]{Base: r.base.last()} }

func (r *ReverseSeq[E, C]) IsLast(cur ReverseCursor[C]) bool { return cur.Base == r.base.first() }

func (r *ReverseSeq[E, C]) prev(cur C) C {
	r.base.dec(&cur)
	return cur
}

func (r *ReverseSeq[E, C]) ReadAt(cur ReverseCursor[C]) E { return r.base.readAt(r.prev(cur.Base)) }

func (r *ReverseSeq[E, C]) Inc(cur *ReverseCursor[C]) { r.base.dec(&cur.Base) }

func (r *ReverseSeq[E, C]) Dec(cur *ReverseCursor[C]) { r.base.inc(&cur.Base) }

func (r *ReverseSeq[E, C]) IncBy(cur *ReverseCursor[C], offset int) { r.base.incBy(&cur.Base, -offset) }

func (r *ReverseSeq[E, C]) Distance(from, to ReverseCursor[C]) int {
	return r.base.distance(to.Base, from.Base)
}

func (r *ReverseSeq[E, C]) Last() ReverseCursor[C] { return ReverseCursor[C]{Base: r.base.first()} }

func (r *ReverseSeq[E, C]) Size() int { return r.base.size() }

func (r *ReverseSeq[E, C]) Swap(a, b ReverseCursor[C]) {
	r.base.swap(r.prev(a.Base), r.prev(b.Base))
}

func (r *ReverseSeq[E, C]) WriteAt(cur ReverseCursor[C], v E) { r.base.writeAt(r.prev(cur.Base), v) }

// Mask keeps the elements of s whose counterpart in mask is true.
// It ends with the shorter of the two sequences.
func Mask[E any, C, CM comparable](s Sequence[E, C], mask Sequence[bool, CM]) *MapSeq[Pair[E, bool], E, ZipCursor[C, CM]] {
	selected := Filter(Zip(s, mask), func(p Pair[E, bool]) bool { return p.Second })
	return Map(selected, func(p Pair[E, bool]) E { return p.First })
}
