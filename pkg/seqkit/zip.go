package seqkit

// Pair is the element type of two sequences traversed side by side.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type ZipCursor[CA, CB comparable] struct {
	A CA
	B CB
}

// ZipSeq walks two sequences in lock step.
type ZipSeq[A, B any, CA, CB comparable] struct {
	a ops[A, CA]
	b ops[B, CB]
}

// Zip pairs up the elements of a and b.
// It ends with the shorter of the two, so its size is the smaller size,
// with an infinite sequence imposing no limit.
func Zip[A, B any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB]) *ZipSeq[A, B, CA, CB] {
	return &ZipSeq[A, B, CA, CB]{a: opsOf(a), b: opsOf(b)}
}

func (z *ZipSeq[A, B, CA, CB]) Capabilities() Caps {
	var (
		ca   = z.a.caps
		cb   = z.b.caps
		caps = ca & cb & (CapMultipass | CapBidirectional | CapRandomAccess | CapInfinite)
	)
	if caps.Has(CapInfinite) {
		return caps
	}
	if (ca.Has(CapSized) || ca.Has(CapInfinite)) && (cb.Has(CapSized) || cb.Has(CapInfinite)) {
		caps |= CapSized
		if caps.Has(CapRandomAccess) {
			caps |= CapBounded
		}
	}
	return caps
}

func (z *ZipSeq[A, B, CA, CB]) First() ZipCursor[CA, CB] {
	return ZipCursor[CA, CB]{A: z.a.first(), B: z.b.first()}
}

func (z *ZipSeq[A, B, CA, CB]) IsLast(cur ZipCursor[CA, CB]) bool {
	return z.a.isLast(cur.A) || z.b.isLast(cur.B)
}

func (z *ZipSeq[A, B, CA, CB]) ReadAt(cur ZipCursor[CA, CB]) Pair[A, B] {
	return Pair[A, B]{First: z.a.readAt(cur.A), Second: z.b.readAt(cur.B)}
}

func (z *ZipSeq[A, B, CA, CB]) Inc(cur *ZipCursor[CA, CB]) {
	z.a.inc(&cur.A)
	z.b.inc(&cur.B)
}

func (z *ZipSeq[A, B, CA, CB]) Dec(cur *ZipCursor[CA, CB]) {
	z.a.dec(&cur.A)
	z.b.dec(&cur.B)
}

func (z *ZipSeq[A, B, CA, CB]) IncBy(cur *ZipCursor[CA, CB], offset int) {
	z.a.incBy(&cur.A, offset)
	z.b.incBy(&cur.B, offset)
}

func (z *ZipSeq[A, B, CA, CB]) Distance(from, to ZipCursor[CA, CB]) int {
	return min(z.a.distance(from.A, to.A), z.b.distance(from.B, to.B))
}

func (z *ZipSeq[A, B, CA, CB]) Size() int {
	sa, aok := z.a.sizeOrInfinite()
	sb, bok := z.b.sizeOrInfinite()
	switch {
	case aok && bok:
		return min(sa, sb)
	case aok:
		return sa
	case bok:
		return sb
	default:
		unsupported(z, "Size")
		return 0
	}
}

func (z *ZipSeq[A, B, CA, CB]) Last() ZipCursor[CA, CB] {
	if !z.Capabilities().Has(CapBounded) {
		unsupported(z, "Last")
	}
	var (
		size = z.Size()
		cur  = z.First()
	)
	z.IncBy(&cur, size)
	return cur
}

// Zip3 zips three sequences into triples.
func Zip3[A, B, C any, CA, CB, CC comparable](a Sequence[A, CA], b Sequence[B, CB], c Sequence[C, CC]) *MapSeq[Pair[Pair[A, B], C], Triple[A, B, C], ZipCursor[ZipCursor[CA, CB], CC]] {
	return Map(Zip(Zip(a, b), c), func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}
	})
}

// ZipWith combines the elements of a and b with fn.
func ZipWith[A, B, R any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB], fn func(A, B) R) *MapSeq[Pair[A, B], R, ZipCursor[CA, CB]] {
	return Map(Zip(a, b), func(p Pair[A, B]) R { return fn(p.First, p.Second) })
}

// Enumerate pairs every element with its index.
func Enumerate[E any, C comparable](s Sequence[E, C]) *ZipSeq[int, E, int, C] {
	return Zip(Iota(0), s)
}
