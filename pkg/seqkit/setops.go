package seqkit

import "cmp"

type setOp int

const (
	setUnion setOp = iota
	setIntersection
	setDifference
	setSymmetricDifference
)

type setSource int8

const (
	fromA setSource = iota
	fromB
	fromBoth
)

// SetCursor holds a cursor into both inputs and which of them supplies the current element.
type SetCursor[CA, CB comparable] struct {
	A    CA
	B    CB
	From setSource
}

// SetSeq merges two sorted sequences as a set operation.
// Both inputs must be sorted by the same ordering the comparator implements;
// the output is sorted too.
type SetSeq[E any, CA, CB comparable] struct {
	a   ops[E, CA]
	b   ops[E, CB]
	cmp func(E, E) int
	op  setOp
}

func newSetSeq[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB], cmp func(E, E) int, op setOp) *SetSeq[E, CA, CB] {
	return &SetSeq[E, CA, CB]{a: opsOf(a), b: opsOf(b), cmp: cmp, op: op}
}

// SetUnion yields the elements present in a or b; an element found in both is yielded once, from a.
func SetUnion[E cmp.Ordered, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp.Compare[E], setUnion)
}

func SetUnionFunc[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB], cmp func(E, E) int) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp, setUnion)
}

// SetIntersection yields the elements of a that are also present in b.
func SetIntersection[E cmp.Ordered, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp.Compare[E], setIntersection)
}

func SetIntersectionFunc[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB], cmp func(E, E) int) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp, setIntersection)
}

// SetDifference yields the elements of a that are not present in b.
func SetDifference[E cmp.Ordered, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp.Compare[E], setDifference)
}

func SetDifferenceFunc[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB], cmp func(E, E) int) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp, setDifference)
}

// SetSymmetricDifference yields the elements present in exactly one of a and b.
func SetSymmetricDifference[E cmp.Ordered, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp.Compare[E], setSymmetricDifference)
}

func SetSymmetricDifferenceFunc[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB], cmp func(E, E) int) *SetSeq[E, CA, CB] {
	return newSetSeq(a, b, cmp, setSymmetricDifference)
}

func (s *SetSeq[E, CA, CB]) Capabilities() Caps { return s.a.caps & s.b.caps & CapMultipass }

func (s *SetSeq[E, CA, CB]) compare(cur SetCursor[CA, CB]) int {
	return s.cmp(s.a.readAt(cur.A), s.b.readAt(cur.B))
}

// satisfy moves the cursor onto the next element of the output.
func (s *SetSeq[E, CA, CB]) satisfy(cur *SetCursor[CA, CB]) {
	for {
		var (
			aEnd = s.a.isLast(cur.A)
			bEnd = s.b.isLast(cur.B)
		)
		switch s.op {
		case setUnion, setSymmetricDifference:
			switch {
			case aEnd && bEnd:
				return
			case aEnd:
				cur.From = fromB
				return
			case bEnd:
				cur.From = fromA
				return
			}
			switch c := s.compare(*cur); {
			case c < 0:
				cur.From = fromA
				return
			case 0 < c:
				cur.From = fromB
				return
			case s.op == setUnion:
				cur.From = fromBoth
				return
			default:
				s.a.inc(&cur.A)
				s.b.inc(&cur.B)
			}
		case setIntersection:
			if aEnd || bEnd {
				return
			}
			switch c := s.compare(*cur); {
			case c < 0:
				s.a.inc(&cur.A)
			case 0 < c:
				s.b.inc(&cur.B)
			default:
				cur.From = fromBoth
				return
			}
		case setDifference:
			if aEnd || bEnd {
				cur.From = fromA
				return
			}
			switch c := s.compare(*cur); {
			case c < 0:
				cur.From = fromA
				return
			case 0 < c:
				s.b.inc(&cur.B)
			default:
				s.a.inc(&cur.A)
				s.b.inc(&cur.B)
			}
		}
	}
}

func (s *SetSeq[E, CA, CB]) First() SetCursor[CA, CB] {
	cur := SetCursor[CA, CB]{A: s.a.first(), B: s.b.first()}
	s.satisfy(&cur)
	return cur
}

func (s *SetSeq[E, CA, CB]) IsLast(cur SetCursor[CA, CB]) bool {
	switch s.op {
	case setIntersection:
		return s.a.isLast(cur.A) || s.b.isLast(cur.B)
	case setDifference:
		return s.a.isLast(cur.A)
	default:
		return s.a.isLast(cur.A) && s.b.isLast(cur.B)
	}
}

func (s *SetSeq[E, CA, CB]) ReadAt(cur SetCursor[CA, CB]) E {
	if cur.From == fromB {
		return s.b.readAt(cur.B)
	}
	return s.a.readAt(cur.A)
}

func (s *SetSeq[E, CA, CB]) Inc(cur *SetCursor[CA, CB]) {
	switch cur.From {
	case fromA:
		s.a.inc(&cur.A)
	case fromB:
		s.b.inc(&cur.B)
	case fromBoth:
		s.a.inc(&cur.A)
		s.b.inc(&cur.B)
	}
	s.satisfy(cur)
}
