package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/pkg/mathkit"
)

type ProductCursor[CA, CB comparable] struct {
	A CA
	B CB
}

// ProductSeq is the cartesian product of two sequences in row-major order:
// the right-hand sequence is traversed completely for every element of the left-hand one.
type ProductSeq[A, B any, CA, CB comparable] struct {
	a ops[A, CA]
	b ops[B, CB]
}

// CartesianProduct returns every pair of an element of a and an element of b.
// b is traversed repeatedly, so it has to be multipass.
func CartesianProduct[A, B any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB]) *ProductSeq[A, B, CA, CB] {
	p := &ProductSeq[A, B, CA, CB]{a: opsOf(a), b: opsOf(b)}
	require(&p.b, CapMultipass, "CartesianProduct")
	return p
}

func (p *ProductSeq[A, B, CA, CB]) Capabilities() Caps {
	var (
		ca   = p.a.caps
		cb   = p.b.caps
		caps = ca & cb & (CapMultipass | CapBidirectional | CapRandomAccess | CapSized)
	)
	if !cb.Has(CapBounded) {
		caps &^= CapBidirectional | CapRandomAccess
	}
	if !cb.Has(CapSized) {
		caps &^= CapRandomAccess
	}
	if ca.Has(CapBounded) {
		caps |= CapBounded
	}
	if ca.Has(CapInfinite) && !p.b.isLast(p.b.first()) {
		caps |= CapInfinite
	}
	return caps
}

func (p *ProductSeq[A, B, CA, CB]) First() ProductCursor[CA, CB] {
	return ProductCursor[CA, CB]{A: p.a.first(), B: p.b.first()}
}

func (p *ProductSeq[A, B, CA, CB]) IsLast(cur ProductCursor[CA, CB]) bool {
	return p.a.isLast(cur.A) || p.b.isLast(cur.B)
}

func (p *ProductSeq[A, B, CA, CB]) ReadAt(cur ProductCursor[CA, CB]) Pair[A, B] {
	return Pair[A, B]{First: p.a.readAt(cur.A), Second: p.b.readAt(cur.B)}
}

func (p *ProductSeq[A, B, CA, CB]) Inc(cur *ProductCursor[CA, CB]) {
	p.b.inc(&cur.B)
	if !p.b.isLast(cur.B) {
		return
	}
	cur.B = p.b.first()
	p.a.inc(&cur.A)
}

func (p *ProductSeq[A, B, CA, CB]) Dec(cur *ProductCursor[CA, CB]) {
	if cur.B == p.b.first() {
		cur.B = p.b.last()
		p.a.dec(&cur.A)
	}
	p.b.dec(&cur.B)
}

func (p *ProductSeq[A, B, CA, CB]) IncBy(cur *ProductCursor[CA, CB], offset int) {
	size := p.b.size()
	if size == 0 {
		return
	}
	first := p.b.first()
	q, r := mathkit.FloorDivMod(mathkit.CheckedAdd(p.b.distance(first, cur.B), offset), size)
	p.b.incBy(&first, r)
	cur.B = first
	p.a.incBy(&cur.A, q)
}

func (p *ProductSeq[A, B, CA, CB]) Distance(from, to ProductCursor[CA, CB]) int {
	rows := mathkit.CheckedMul(p.a.distance(from.A, to.A), p.b.size())
	return mathkit.CheckedAdd(rows, p.b.distance(from.B, to.B))
}

func (p *ProductSeq[A, B, CA, CB]) Last() ProductCursor[CA, CB] {
	first := p.First()
	if p.IsLast(first) {
		return first
	}
	return ProductCursor[CA, CB]{A: p.a.last(), B: first.B}
}

func (p *ProductSeq[A, B, CA, CB]) Size() int {
	return mathkit.CheckedMul(p.a.size(), p.b.size())
}

// CartesianProduct3 returns every triple of elements of a, b and c, with c varying fastest.
func CartesianProduct3[A, B, C any, CA, CB, CC comparable](a Sequence[A, CA], b Sequence[B, CB], c Sequence[C, CC]) *MapSeq[Pair[Pair[A, B], C], Triple[A, B, C], ProductCursor[ProductCursor[CA, CB], CC]] {
	return Map(CartesianProduct(CartesianProduct(a, b), c), func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}
	})
}

// CartesianProductWith combines every pair of elements of a and b with fn.
func CartesianProductWith[A, B, R any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB], fn func(A, B) R) *MapSeq[Pair[A, B], R, ProductCursor[CA, CB]] {
	return Map(CartesianProduct(a, b), func(p Pair[A, B]) R { return fn(p.First, p.Second) })
}

// MaxPowerArity is the largest number of sequences CartesianProductN and CartesianPower combine.
const MaxPowerArity = 8

// PowerCursor holds one cursor per combined sequence; unused slots stay zero.
type PowerCursor[C comparable] [MaxPowerArity]C

// PowerSeq is the cartesian product of sequences of the same kind.
// Its elements are freshly allocated slices, one element from every sequence.
type PowerSeq[E any, C comparable] struct {
	seqs []ops[E, C]
}

// CartesianProductN returns the cartesian product of the sequences in row-major order.
func CartesianProductN[E any, C comparable](seqs ...Sequence[E, C]) *PowerSeq[E, C] {
	check.That(0 < len(seqs) && len(seqs) <= MaxPowerArity, ErrInvalidArgument,
		"CartesianProductN combines 1 to %d sequences, got %d", MaxPowerArity, len(seqs))
	p := &PowerSeq[E, C]{seqs: make([]ops[E, C], len(seqs))}
	for i, s := range seqs {
		p.seqs[i] = opsOf(s)
		if 0 < i {
			require(&p.seqs[i], CapMultipass, "CartesianProductN")
		}
	}
	return p
}

// CartesianPower returns the n-fold cartesian product of s with itself.
func CartesianPower[E any, C comparable](s Sequence[E, C], n int) *PowerSeq[E, C] {
	check.That(0 < n && n <= MaxPowerArity, ErrInvalidArgument,
		"CartesianPower: power must be between 1 and %d, got %d", MaxPowerArity, n)
	seqs := make([]Sequence[E, C], n)
	for i := range seqs {
		seqs[i] = s
	}
	return CartesianProductN(seqs...)
}

func (p *PowerSeq[E, C]) Capabilities() Caps {
	caps := CapMultipass | CapBidirectional | CapRandomAccess | CapSized
	for i, s := range p.seqs {
		caps &= s.caps
		if 0 < i && !s.has(CapBounded) {
			caps &^= CapBidirectional | CapRandomAccess
		}
		if 0 < i && !s.has(CapSized) {
			caps &^= CapRandomAccess
		}
	}
	if p.seqs[0].has(CapBounded) {
		caps |= CapBounded
	}
	if p.seqs[0].has(CapInfinite) && !p.anyEmptyRight() {
		caps |= CapInfinite
	}
	return caps
}

// anyEmptyRight reports whether one of the multipass right-hand sequences is empty.
func (p *PowerSeq[E, C]) anyEmptyRight() bool {
	for i := 1; i < len(p.seqs); i++ {
		if p.seqs[i].isLast(p.seqs[i].first()) {
			return true
		}
	}
	return false
}

func (p *PowerSeq[E, C]) First() PowerCursor[C] {
	var cur PowerCursor[C]
	for i := range p.seqs {
		cur[i] = p.seqs[i].first()
	}
	return cur
}

func (p *PowerSeq[E, C]) IsLast(cur PowerCursor[C]) bool {
	for i := range p.seqs {
		if p.seqs[i].isLast(cur[i]) {
			return true
		}
	}
	return false
}

func (p *PowerSeq[E, C]) ReadAt(cur PowerCursor[C]) []E {
	vs := make([]E, len(p.seqs))
	for i := range p.seqs {
		vs[i] = p.seqs[i].readAt(cur[i])
	}
	return vs
}

func (p *PowerSeq[E, C]) Inc(cur *PowerCursor[C]) {
	for i := len(p.seqs) - 1; 0 < i; i-- {
		p.seqs[i].inc(&cur[i])
		if !p.seqs[i].isLast(cur[i]) {
			return
		}
		cur[i] = p.seqs[i].first()
	}
	p.seqs[0].inc(&cur[0])
}

func (p *PowerSeq[E, C]) Dec(cur *PowerCursor[C]) {
	for i := len(p.seqs) - 1; 0 < i; i-- {
		s := &p.seqs[i]
		if cur[i] != s.first() {
			s.dec(&cur[i])
			return
		}
		cur[i] = s.last()
		s.dec(&cur[i])
	}
	p.seqs[0].dec(&cur[0])
}

func (p *PowerSeq[E, C]) IncBy(cur *PowerCursor[C], offset int) {
	carry := offset
	for i := len(p.seqs) - 1; 0 < i; i-- {
		s := &p.seqs[i]
		size := s.size()
		if size == 0 {
			return
		}
		first := s.first()
		q, r := mathkit.FloorDivMod(mathkit.CheckedAdd(s.distance(first, cur[i]), carry), size)
		s.incBy(&first, r)
		cur[i] = first
		carry = q
	}
	p.seqs[0].incBy(&cur[0], carry)
}

func (p *PowerSeq[E, C]) Distance(from, to PowerCursor[C]) int {
	var (
		d      int
		weight = 1
	)
	for i := len(p.seqs) - 1; 0 <= i; i-- {
		s := &p.seqs[i]
		d = mathkit.CheckedAdd(d, mathkit.CheckedMul(s.distance(from[i], to[i]), weight))
		if 0 < i {
			weight = mathkit.CheckedMul(weight, s.size())
		}
	}
	return d
}

func (p *PowerSeq[E, C]) Last() PowerCursor[C] {
	cur := p.First()
	if p.IsLast(cur) {
		return cur
	}
	cur[0] = p.seqs[0].last()
	return cur
}

func (p *PowerSeq[E, C]) Size() int {
	size := 1
	for i := range p.seqs {
		size = mathkit.CheckedMul(size, p.seqs[i].size())
	}
	return size
}
