package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/pkg/mathkit"
)

// CycleCursor is an upstream cursor together with the number of completed repetitions.
type CycleCursor[C comparable] struct {
	Base C
	N    int
}

// CycleSeq repeats its upstream, endlessly or a fixed number of times.
type CycleSeq[E any, C comparable] struct {
	base ops[E, C]
	reps int
}

const infiniteReps = -1

// Cycle repeats s forever. Cycling an empty sequence results in an empty sequence.
func Cycle[E any, C comparable](s Sequence[E, C]) *CycleSeq[E, C] {
	c := &CycleSeq[E, C]{base: opsOf(s), reps: infiniteReps}
	require(&c.base, CapMultipass, "Cycle")
	return c
}

// CycleN repeats s n times.
func CycleN[E any, C comparable](s Sequence[E, C], n int) *CycleSeq[E, C] {
	check.That(0 <= n, ErrInvalidArgument, "CycleN: negative count %d", n)
	c := &CycleSeq[E, C]{base: opsOf(s), reps: n}
	require(&c.base, CapMultipass, "CycleN")
	return c
}

func (c *CycleSeq[E, C]) infinite() bool { return c.reps == infiniteReps }

func (c *CycleSeq[E, C]) Capabilities() Caps {
	var (
		bc   = c.base.caps
		caps = bc & (CapMultipass | CapBidirectional | CapRandomAccess)
	)
	if !bc.Has(CapBounded) {
		caps &^= CapBidirectional | CapRandomAccess
	}
	if !bc.Has(CapSized) {
		caps &^= CapRandomAccess
	}
	if c.infinite() {
		return caps | CapInfinite
	}
	return caps | CapBounded | bc&CapSized
}

func (c *CycleSeq[E, C]) First() CycleCursor[C] {
	return CycleCursor[C]{Base: c.base.first()}
}

func (c *CycleSeq[E, C]) IsLast(cur CycleCursor[C]) bool {
	return (!c.infinite() && c.reps <= cur.N) || c.base.isLast(cur.Base)
}

func (c *CycleSeq[E, C]) ReadAt(cur CycleCursor[C]) E { return c.base.readAt(cur.Base) }

func (c *CycleSeq[E, C]) Inc(cur *CycleCursor[C]) {
	c.base.inc(&cur.Base)
	if c.base.isLast(cur.Base) {
		cur.Base = c.base.first()
		cur.N++
	}
}

func (c *CycleSeq[E, C]) Dec(cur *CycleCursor[C]) {
	if cur.Base == c.base.first() {
		cur.Base = c.base.last()
		cur.N--
	}
	c.base.dec(&cur.Base)
}

func (c *CycleSeq[E, C]) IncBy(cur *CycleCursor[C], offset int) {
	size := c.base.size()
	if size == 0 {
		return
	}
	first := c.base.first()
	q, r := mathkit.FloorDivMod(mathkit.CheckedAdd(c.base.distance(first, cur.Base), offset), size)
	c.base.incBy(&first, r)
	cur.Base = first
	cur.N = mathkit.CheckedAdd(cur.N, q)
}

func (c *CycleSeq[E, C]) Distance(from, to CycleCursor[C]) int {
	laps := mathkit.CheckedMul(mathkit.CheckedSub(to.N, from.N), c.base.size())
	return mathkit.CheckedAdd(laps, c.base.distance(from.Base, to.Base))
}

func (c *CycleSeq[E, C]) Last() CycleCursor[C] {
	if c.infinite() {
		unsupported(c, "Last")
	}
	first := c.First()
	if c.base.isLast(first.Base) {
		return first
	}
	return CycleCursor[C]{Base: first.Base, N: c.reps}
}

func (c *CycleSeq[E, C]) Size() int {
	if c.infinite() {
		unsupported(c, "Size")
	}
	return mathkit.CheckedMul(c.base.size(), c.reps)
}

func (c *CycleSeq[E, C]) Iterate() Context[E] {
	var (
		n     int
		ctx   Context[E]
		empty = c.base.isLast(c.base.first())
	)
	return NewContext(func(pred func(E) bool) bool {
		if empty {
			return true
		}
		for ; c.infinite() || n < c.reps; n++ {
			if ctx == nil {
				ctx = Iterate(c.base.seq)
			}
			if ctx.RunWhile(pred) == Incomplete {
				return false
			}
			ctx = nil
		}
		return true
	})
}
