package seqkit

// MapSeq applies a function to every element of its upstream.
type MapSeq[E, R any, C comparable] struct {
	base ops[E, C]
	fn   func(E) R
}

// Map returns a sequence of fn applied to the elements of s.
// It keeps every capability of s except contiguity, and it calls fn on every read.
func Map[E, R any, C comparable](s Sequence[E, C], fn func(E) R) *MapSeq[E, R, C] {
	return &MapSeq[E, R, C]{base: opsOf(s), fn: fn}
}

func (m *MapSeq[E, R, C]) Capabilities() Caps {
	return m.base.caps &^ (CapContiguous | CapSwappable)
}

func (m *MapSeq[E, R, C]) First() C { return m.base.first() }

func (m *MapSeq[E, R, C]) IsLast(cur C) bool { return m.base.isLast(cur) }

func (m *MapSeq[E, R, C]) ReadAt(cur C) R { return m.fn(m.base.readAt(cur)) }

func (m *MapSeq[E, R, C]) Inc(cur *C) { m.base.inc(cur) }

func (m *MapSeq[E, R, C]) Dec(cur *C) { m.base.dec(cur) }

func (m *MapSeq[E, R, C]) IncBy(cur *C, offset int) { m.base.incBy(cur, offset) }

func (m *MapSeq[E, R, C]) Distance(from, to C) int { return m.base.distance(from, to) }

func (m *MapSeq[E, R, C]) Last() C { return m.base.last() }

func (m *MapSeq[E, R, C]) Size() int { return m.base.size() }

func (m *MapSeq[E, R, C]) Iterate() Context[R] {
	inner := Iterate(m.base.seq)
	return NewContext(func(pred func(R) bool) bool {
		return runAll(inner, func(e E) bool { return pred(m.fn(e)) })
	})
}
