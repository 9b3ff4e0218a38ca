package seqkit

type FlattenCursor[CO, CI comparable] struct {
	Outer CO
	Inner CI
}

// FlattenSeq yields the elements of the sequences produced by its outer sequence, in order.
// The inner sequence under the current outer cursor is cached,
// so it is read from the outer sequence once per outer position.
type FlattenSeq[E any, CI comparable, S Sequence[E, CI], CO comparable] struct {
	outer   ops[S, CO]
	inner   ops[E, CI]
	innerAt CO
	cached  bool

	innerCaps  Caps
	innerKnown bool
}

// Flatten concatenates the sequences of s.
// Empty inner sequences are skipped.
// It is multipass only when the inner sequences are multipass as well,
// and bidirectional when s is and the inner sequences are bidirectional and bounded.
func Flatten[E any, CI comparable, S Sequence[E, CI], CO comparable](s Sequence[S, CO]) *FlattenSeq[E, CI, S, CO] {
	return &FlattenSeq[E, CI, S, CO]{outer: opsOf(s)}
}

// FlatMap maps every element of s to a sequence and flattens the result.
func FlatMap[T, E any, CO, CI comparable](s Sequence[T, CO], fn func(T) Sequence[E, CI]) *FlattenSeq[E, CI, Sequence[E, CI], CO] {
	return Flatten[E, CI](Map(s, fn))
}

func (f *FlattenSeq[E, CI, S, CO]) Capabilities() Caps {
	if !f.outer.has(CapMultipass) {
		return 0
	}
	var (
		inner = f.innerCapabilities()
		caps  = inner & CapMultipass
	)
	if f.outer.has(CapBidirectional) && inner.Has(CapBidirectional|CapBounded) {
		caps |= CapBidirectional
	}
	if f.outer.has(CapBounded) {
		caps |= CapBounded
	}
	return caps
}

// innerCapabilities samples the first inner sequence.
// Only called for a multipass outer sequence, where reading it has no effect on later passes.
// An empty outer sequence has no inner sequence to restrict anything.
func (f *FlattenSeq[E, CI, S, CO]) innerCapabilities() Caps {
	if !f.innerKnown {
		if first := f.outer.first(); f.outer.isLast(first) {
			f.innerCaps = CapMultipass | CapBidirectional | CapBounded
		} else {
			f.innerCaps = f.innerOf(first).caps
		}
		f.innerKnown = true
	}
	return f.innerCaps
}

func (f *FlattenSeq[E, CI, S, CO]) innerOf(cur CO) *ops[E, CI] {
	if !f.cached || f.innerAt != cur {
		f.inner = opsOf[E, CI](f.outer.readAt(cur))
		f.innerAt, f.cached = cur, true
	}
	return &f.inner
}

func (f *FlattenSeq[E, CI, S, CO]) satisfy(cur *FlattenCursor[CO, CI]) {
	for {
		if f.outer.isLast(cur.Outer) {
			var zero CI
			cur.Inner = zero
			return
		}
		if !f.innerOf(cur.Outer).isLast(cur.Inner) {
			return
		}
		f.outer.inc(&cur.Outer)
		if !f.outer.isLast(cur.Outer) {
			cur.Inner = f.innerOf(cur.Outer).first()
		}
	}
}

func (f *FlattenSeq[E, CI, S, CO]) First() FlattenCursor[CO, CI] {
	cur := FlattenCursor[CO, CI]{Outer: f.outer.first()}
	if !f.outer.isLast(cur.Outer) {
		cur.Inner = f.innerOf(cur.Outer).first()
	}
	f.satisfy(&cur)
	return cur
}

func (f *FlattenSeq[E, CI, S, CO]) IsLast(cur FlattenCursor[CO, CI]) bool {
	return f.outer.isLast(cur.Outer)
}

func (f *FlattenSeq[E, CI, S, CO]) ReadAt(cur FlattenCursor[CO, CI]) E {
	return f.innerOf(cur.Outer).readAt(cur.Inner)
}

func (f *FlattenSeq[E, CI, S, CO]) Inc(cur *FlattenCursor[CO, CI]) {
	f.innerOf(cur.Outer).inc(&cur.Inner)
	f.satisfy(cur)
}

func (f *FlattenSeq[E, CI, S, CO]) Dec(cur *FlattenCursor[CO, CI]) {
	if f.outer.isLast(cur.Outer) {
		f.outer.dec(&cur.Outer)
		cur.Inner = f.innerOf(cur.Outer).last()
	}
	for {
		in := f.innerOf(cur.Outer)
		if cur.Inner != in.first() {
			in.dec(&cur.Inner)
			return
		}
		f.outer.dec(&cur.Outer)
		cur.Inner = f.innerOf(cur.Outer).last()
	}
}

func (f *FlattenSeq[E, CI, S, CO]) Last() FlattenCursor[CO, CI] {
	return FlattenCursor[CO, CI]{Outer: f.outer.last()}
}

func (f *FlattenSeq[E, CI, S, CO]) Iterate() Context[E] {
	var (
		outer   = Iterate(f.outer.seq)
		current Context[E]
	)
	return NewContext(func(pred func(E) bool) bool {
		if current != nil {
			if current.RunWhile(pred) == Incomplete {
				return false
			}
			current = nil
		}
		var stopped bool
		outer.RunWhile(func(in S) bool {
			ctx := Iterate[E, CI](in)
			if ctx.RunWhile(pred) == Incomplete {
				current, stopped = ctx, true
				return false
			}
			return true
		})
		return !stopped
	})
}
