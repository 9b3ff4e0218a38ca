package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// WindowCursor marks the first and the last element of a window.
type WindowCursor[C comparable] struct {
	From C
	To   C
}

// window is the cursor arithmetic shared by Slide and Pairwise:
// both ends of a window move in lockstep.
type window[E any, C comparable] struct {
	base ops[E, C]
	n    int
}

func (w *window[E, C]) caps() Caps {
	caps := w.base.caps & (CapMultipass | CapBidirectional | CapRandomAccess | CapSized | CapInfinite)
	if w.base.has(CapRandomAccess | CapBounded) {
		caps |= CapBounded
	}
	return caps
}

func (w *window[E, C]) first() WindowCursor[C] {
	from := w.base.first()
	to := from
	w.base.advance(&to, w.n-1)
	return WindowCursor[C]{From: from, To: to}
}

func (w *window[E, C]) isLast(cur WindowCursor[C]) bool { return w.base.isLast(cur.To) }

func (w *window[E, C]) inc(cur *WindowCursor[C]) {
	w.base.inc(&cur.From)
	w.base.inc(&cur.To)
}

func (w *window[E, C]) dec(cur *WindowCursor[C]) {
	w.base.dec(&cur.From)
	w.base.dec(&cur.To)
}

func (w *window[E, C]) incBy(cur *WindowCursor[C], offset int) {
	w.base.incBy(&cur.From, offset)
	w.base.incBy(&cur.To, offset)
}

func (w *window[E, C]) distance(from, to WindowCursor[C]) int {
	return w.base.distance(from.From, to.From)
}

func (w *window[E, C]) size() int { return max(w.base.size()-w.n+1, 0) }

func (w *window[E, C]) last() WindowCursor[C] {
	size := w.base.size()
	if size < w.n {
		return w.first()
	}
	from := w.base.first()
	w.base.incBy(&from, size-w.n+1)
	return WindowCursor[C]{From: from, To: w.base.last()}
}

// SlideSeq yields every run of n consecutive elements of its upstream.
type SlideSeq[E any, C comparable] struct {
	window[E, C]
}

// Slide returns the overlapping windows of n elements of s: for 1, 2, 3, 4 and n=3
// it yields [1 2 3] and [2 3 4]. A sequence shorter than n has no windows.
// The windows are views over s.
func Slide[E any, C comparable](s Sequence[E, C], n int) *SlideSeq[E, C] {
	check.That(0 < n, ErrInvalidArgument, "Slide: window size must be positive, got %d", n)
	sl := &SlideSeq[E, C]{window: window[E, C]{base: opsOf(s), n: n}}
	require(&sl.base, CapMultipass, "Slide")
	return sl
}

func (s *SlideSeq[E, C]) Capabilities() Caps { return s.caps() }

func (s *SlideSeq[E, C]) First() WindowCursor[C] { return s.first() }

func (s *SlideSeq[E, C]) IsLast(cur WindowCursor[C]) bool { return s.isLast(cur) }

func (s *SlideSeq[E, C]) ReadAt(cur WindowCursor[C]) *TakeSeq[E, C] {
	check.That(!s.isLast(cur), ErrOutOfRange, "Slide: read past the last window")
	return Take[E, C](SliceFrom(s.base.seq, cur.From), s.n)
}

func (s *SlideSeq[E, C]) Inc(cur *WindowCursor[C]) { s.inc(cur) }

func (s *SlideSeq[E, C]) Dec(cur *WindowCursor[C]) { s.dec(cur) }

func (s *SlideSeq[E, C]) IncBy(cur *WindowCursor[C], offset int) { s.incBy(cur, offset) }

func (s *SlideSeq[E, C]) Distance(from, to WindowCursor[C]) int { return s.distance(from, to) }

func (s *SlideSeq[E, C]) Last() WindowCursor[C] { return s.last() }

func (s *SlideSeq[E, C]) Size() int { return s.size() }

// PairwiseSeq yields every pair of adjacent elements of its upstream.
type PairwiseSeq[E any, C comparable] struct {
	window[E, C]
}

// Pairwise returns the adjacent pairs of s: for 1, 2, 3 it yields (1, 2) and (2, 3).
func Pairwise[E any, C comparable](s Sequence[E, C]) *PairwiseSeq[E, C] {
	p := &PairwiseSeq[E, C]{window: window[E, C]{base: opsOf(s), n: 2}}
	require(&p.base, CapMultipass, "Pairwise")
	return p
}

// PairwiseMap combines every pair of adjacent elements of s with fn,
// e.g. subtraction gives the differences between neighbours.
func PairwiseMap[E, R any, C comparable](s Sequence[E, C], fn func(a, b E) R) *MapSeq[Pair[E, E], R, WindowCursor[C]] {
	return Map(Pairwise(s), func(p Pair[E, E]) R { return fn(p.First, p.Second) })
}

func (p *PairwiseSeq[E, C]) Capabilities() Caps { return p.caps() }

func (p *PairwiseSeq[E, C]) First() WindowCursor[C] { return p.first() }

func (p *PairwiseSeq[E, C]) IsLast(cur WindowCursor[C]) bool { return p.isLast(cur) }

func (p *PairwiseSeq[E, C]) ReadAt(cur WindowCursor[C]) Pair[E, E] {
	return Pair[E, E]{First: p.base.readAt(cur.From), Second: p.base.readAt(cur.To)}
}

func (p *PairwiseSeq[E, C]) Inc(cur *WindowCursor[C]) { p.inc(cur) }

func (p *PairwiseSeq[E, C]) Dec(cur *WindowCursor[C]) { p.dec(cur) }

func (p *PairwiseSeq[E, C]) IncBy(cur *WindowCursor[C], offset int) { p.incBy(cur, offset) }

func (p *PairwiseSeq[E, C]) Distance(from, to WindowCursor[C]) int { return p.distance(from, to) }

func (p *PairwiseSeq[E, C]) Last() WindowCursor[C] { return p.last() }

func (p *PairwiseSeq[E, C]) Size() int { return p.size() }

// AdjacentFilterSeq drops the elements that fail a predicate against their upstream predecessor.
type AdjacentFilterSeq[E any, C comparable] struct {
	base ops[E, C]
	pred func(prev, next E) bool
}

// AdjacentFilter keeps the first element of s and every later element e
// for which pred(previous element of s, e) holds.
func AdjacentFilter[E any, C comparable](s Sequence[E, C], pred func(prev, next E) bool) *AdjacentFilterSeq[E, C] {
	a := &AdjacentFilterSeq[E, C]{base: opsOf(s), pred: pred}
	require(&a.base, CapMultipass, "AdjacentFilter")
	return a
}

// Dedup collapses runs of equal adjacent elements into one.
func Dedup[E comparable, C comparable](s Sequence[E, C]) *AdjacentFilterSeq[E, C] {
	return AdjacentFilter(s, func(prev, next E) bool { return prev != next })
}

func (a *AdjacentFilterSeq[E, C]) Capabilities() Caps {
	return a.base.caps & (CapMultipass | CapBidirectional | CapBounded)
}

func (a *AdjacentFilterSeq[E, C]) First() C { return a.base.first() }

func (a *AdjacentFilterSeq[E, C]) IsLast(cur C) bool { return a.base.isLast(cur) }

func (a *AdjacentFilterSeq[E, C]) ReadAt(cur C) E { return a.base.readAt(cur) }

func (a *AdjacentFilterSeq[E, C]) Inc(cur *C) {
	for {
		prev := *cur
		a.base.inc(cur)
		if a.base.isLast(*cur) || a.pred(a.base.readAt(prev), a.base.readAt(*cur)) {
			return
		}
	}
}

func (a *AdjacentFilterSeq[E, C]) Dec(cur *C) {
	first := a.base.first()
	for {
		a.base.dec(cur)
		if *cur == first {
			return
		}
		prev := *cur
		a.base.dec(&prev)
		if a.pred(a.base.readAt(prev), a.base.readAt(*cur)) {
			return
		}
	}
}

func (a *AdjacentFilterSeq[E, C]) Last() C { return a.base.last() }

func (a *AdjacentFilterSeq[E, C]) Iterate() Context[E] {
	var (
		inner   = Iterate(a.base.seq)
		prev    E
		started bool
	)
	return NewContext(func(pred func(E) bool) bool {
		return runAll(inner, func(e E) bool {
			keep := !started || a.pred(prev, e)
			prev, started = e, true
			if !keep {
				return true
			}
			return pred(e)
		})
	})
}
