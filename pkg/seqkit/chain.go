package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/pkg/mathkit"
)

// ChainCursor tags a cursor of one of the chained sequences with its position in the chain.
type ChainCursor[C comparable] struct {
	Index int
	Inner C
}

// ChainSeq concatenates sequences of the same element and cursor type.
type ChainSeq[E any, C comparable] struct {
	seqs []ops[E, C]
}

// Chain returns the elements of every sequence, one sequence after the other.
// Sequences with different cursor types can be chained after passing them through Erase.
func Chain[E any, C comparable](seqs ...Sequence[E, C]) *ChainSeq[E, C] {
	check.That(0 < len(seqs), ErrInvalidArgument, "Chain needs at least one sequence")
	c := &ChainSeq[E, C]{seqs: make([]ops[E, C], len(seqs))}
	for i, s := range seqs {
		c.seqs[i] = opsOf(s)
	}
	return c
}

func (c *ChainSeq[E, C]) Capabilities() Caps {
	var (
		caps      = CapMultipass | CapBidirectional | CapRandomAccess | CapSized
		infinite  bool
		lastIndex = len(c.seqs) - 1
	)
	for i, s := range c.seqs {
		caps &= s.caps
		if i < lastIndex && !s.has(CapBounded) {
			caps &^= CapBidirectional | CapRandomAccess
		}
		if s.has(CapInfinite) {
			infinite = true
		}
	}
	if c.seqs[lastIndex].has(CapBounded) {
		caps |= CapBounded
	}
	if infinite {
		caps |= CapInfinite
		caps &^= CapSized
	}
	return caps
}

func (c *ChainSeq[E, C]) satisfy(cur *ChainCursor[C]) {
	for cur.Index < len(c.seqs)-1 && c.seqs[cur.Index].isLast(cur.Inner) {
		cur.Index++
		cur.Inner = c.seqs[cur.Index].first()
	}
}

func (c *ChainSeq[E, C]) First() ChainCursor[C] {
	cur := ChainCursor[C]{Index: 0, Inner: c.seqs[0].first()}
	c.satisfy(&cur)
	return cur
}

func (c *ChainSeq[E, C]) IsLast(cur ChainCursor[C]) bool {
	return cur.Index == len(c.seqs)-1 && c.seqs[cur.Index].isLast(cur.Inner)
}

func (c *ChainSeq[E, C]) ReadAt(cur ChainCursor[C]) E {
	return c.seqs[cur.Index].readAt(cur.Inner)
}

func (c *ChainSeq[E, C]) Inc(cur *ChainCursor[C]) {
	c.seqs[cur.Index].inc(&cur.Inner)
	c.satisfy(cur)
}

func (c *ChainSeq[E, C]) Dec(cur *ChainCursor[C]) {
	for 0 < cur.Index && cur.Inner == c.seqs[cur.Index].first() {
		cur.Index--
		cur.Inner = c.seqs[cur.Index].last()
	}
	c.seqs[cur.Index].dec(&cur.Inner)
}

func (c *ChainSeq[E, C]) IncBy(cur *ChainCursor[C], offset int) {
	lastIndex := len(c.seqs) - 1
	for 0 < offset {
		s := &c.seqs[cur.Index]
		if cur.Index == lastIndex {
			s.incBy(&cur.Inner, offset)
			return
		}
		remaining := s.distance(cur.Inner, s.last())
		if offset < remaining {
			s.incBy(&cur.Inner, offset)
			return
		}
		offset -= remaining
		cur.Index++
		cur.Inner = c.seqs[cur.Index].first()
	}
	for offset < 0 {
		s := &c.seqs[cur.Index]
		consumed := s.distance(s.first(), cur.Inner)
		if -offset <= consumed || cur.Index == 0 {
			s.incBy(&cur.Inner, offset)
			return
		}
		offset += consumed
		cur.Index--
		cur.Inner = c.seqs[cur.Index].last()
	}
	c.satisfy(cur)
}

func (c *ChainSeq[E, C]) Distance(from, to ChainCursor[C]) int {
	switch {
	case from.Index == to.Index:
		return c.seqs[from.Index].distance(from.Inner, to.Inner)
	case to.Index < from.Index:
		return -c.Distance(to, from)
	}
	head := &c.seqs[from.Index]
	tail := &c.seqs[to.Index]
	d := head.distance(from.Inner, head.last())
	for i := from.Index + 1; i < to.Index; i++ {
		d = mathkit.CheckedAdd(d, c.seqs[i].size())
	}
	return mathkit.CheckedAdd(d, tail.distance(tail.first(), to.Inner))
}

func (c *ChainSeq[E, C]) Last() ChainCursor[C] {
	lastIndex := len(c.seqs) - 1
	return ChainCursor[C]{Index: lastIndex, Inner: c.seqs[lastIndex].last()}
}

func (c *ChainSeq[E, C]) Size() int {
	var size int
	for i := range c.seqs {
		size = mathkit.CheckedAdd(size, c.seqs[i].size())
	}
	return size
}

func (c *ChainSeq[E, C]) Iterate() Context[E] {
	var (
		index int
		ctx   Context[E]
	)
	return NewContext(func(pred func(E) bool) bool {
		for ; index < len(c.seqs); index++ {
			if ctx == nil {
				ctx = Iterate(c.seqs[index].seq)
			}
			if ctx.RunWhile(pred) == Incomplete {
				return false
			}
			ctx = nil
		}
		return true
	})
}

// ErasedSeq hides the cursor type of a sequence behind any,
// so that sequences of different kinds can be combined by Chain.
type ErasedSeq[E any] struct {
	caps  func() Caps
	first func() any
	last  func(cur any) bool
	read  func(cur any) E
	inc   func(cur *any)
	dec   func(cur *any)
	incBy func(cur *any, offset int)
	dist  func(from, to any) int
	end   func() any
	size  func() int
}

func Erase[E any, C comparable](s Sequence[E, C]) *ErasedSeq[E] {
	o := opsOf(s)
	return &ErasedSeq[E]{
		caps:  func() Caps { return o.caps &^ (CapContiguous | CapSwappable) },
		first: func() any { return o.first() },
		last:  func(cur any) bool { return o.isLast(cur.(C)) },
		read:  func(cur any) E { return o.readAt(cur.(C)) },
		inc: func(cur *any) {
			c := (*cur).(C)
			o.inc(&c)
			*cur = c
		},
		dec: func(cur *any) {
			c := (*cur).(C)
			o.dec(&c)
			*cur = c
		},
		incBy: func(cur *any, offset int) {
			c := (*cur).(C)
			o.incBy(&c, offset)
			*cur = c
		},
		dist: func(from, to any) int { return o.distance(from.(C), to.(C)) },
		end:  func() any { return o.last() },
		size: func() int { return o.size() },
	}
}

func (e *ErasedSeq[E]) Capabilities() Caps { return e.caps() }

func (e *ErasedSeq[E]) First() any { return e.first() }

func (e *ErasedSeq[E]) IsLast(cur any) bool { return e.last(cur) }

func (e *ErasedSeq[E]) ReadAt(cur any) E { return e.read(cur) }

func (e *ErasedSeq[E]) Inc(cur *any) { e.inc(cur) }

func (e *ErasedSeq[E]) Dec(cur *any) { e.dec(cur) }

func (e *ErasedSeq[E]) IncBy(cur *any, offset int) { e.incBy(cur, offset) }

func (e *ErasedSeq[E]) Distance(from, to any) int { return e.dist(from, to) }

func (e *ErasedSeq[E]) Last() any { return e.end() }

func (e *ErasedSeq[E]) Size() int { return e.size() }
