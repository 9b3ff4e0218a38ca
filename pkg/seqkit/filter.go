package seqkit

// FilterSeq skips the elements of its upstream that do not satisfy a predicate.
type FilterSeq[E any, C comparable] struct {
	base ops[E, C]
	pred func(E) bool
}

// Filter returns the elements of s for which pred holds.
// The result is never sized or random access, as finding the n-th match needs a walk.
func Filter[E any, C comparable](s Sequence[E, C], pred func(E) bool) *FilterSeq[E, C] {
	return &FilterSeq[E, C]{base: opsOf(s), pred: pred}
}

func (f *FilterSeq[E, C]) Capabilities() Caps {
	return f.base.caps & (CapMultipass | CapBidirectional | CapBounded)
}

func (f *FilterSeq[E, C]) satisfy(cur *C) {
	for !f.base.isLast(*cur) && !f.pred(f.base.readAt(*cur)) {
		f.base.inc(cur)
	}
}

func (f *FilterSeq[E, C]) First() C {
	cur := f.base.first()
	f.satisfy(&cur)
	return cur
}

func (f *FilterSeq[E, C]) IsLast(cur C) bool { return f.base.isLast(cur) }

func (f *FilterSeq[E, C]) ReadAt(cur C) E { return f.base.readAt(cur) }

func (f *FilterSeq[E, C]) Inc(cur *C) {
	f.base.inc(cur)
	f.satisfy(cur)
}

func (f *FilterSeq[E, C]) Dec(cur *C) {
	f.base.dec(cur)
	for !f.pred(f.base.readAt(*cur)) {
		f.base.dec(cur)
	}
}

func (f *FilterSeq[E, C]) Last() C { return f.base.last() }

func (f *FilterSeq[E, C]) Iterate() Context[E] {
	inner := Iterate(f.base.seq)
	return NewContext(func(pred func(E) bool) bool {
		return runAll(inner, func(e E) bool {
			if !f.pred(e) {
				return true
			}
			return pred(e)
		})
	})
}
