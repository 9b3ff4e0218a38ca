package seqkit

type InterleaveCursor[CA, CB comparable] struct {
	A CA
	B CB
	// OnB is set when the next element comes from the second sequence.
	OnB bool
}

// InterleaveSeq alternates between the elements of two sequences.
type InterleaveSeq[E any, CA, CB comparable] struct {
	a ops[E, CA]
	b ops[E, CB]
}

// Interleave yields a[0], b[0], a[1], b[1], ... and ends as soon as the sequence
// whose turn it is runs out.
func Interleave[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) *InterleaveSeq[E, CA, CB] {
	return &InterleaveSeq[E, CA, CB]{a: opsOf(a), b: opsOf(b)}
}

func (s *InterleaveSeq[E, CA, CB]) Capabilities() Caps {
	caps := s.a.caps & s.b.caps & (CapMultipass | CapBidirectional | CapRandomAccess | CapSized)
	if caps.Has(CapRandomAccess | CapSized) {
		caps |= CapBounded
	}
	if s.a.has(CapInfinite) && s.b.has(CapInfinite) {
		caps |= CapInfinite
	}
	return caps
}

func (s *InterleaveSeq[E, CA, CB]) First() InterleaveCursor[CA, CB] {
	return InterleaveCursor[CA, CB]{A: s.a.first(), B: s.b.first()}
}

func (s *InterleaveSeq[E, CA, CB]) IsLast(cur InterleaveCursor[CA, CB]) bool {
	if cur.OnB {
		return s.b.isLast(cur.B)
	}
	return s.a.isLast(cur.A)
}

func (s *InterleaveSeq[E, CA, CB]) ReadAt(cur InterleaveCursor[CA, CB]) E {
	if cur.OnB {
		return s.b.readAt(cur.B)
	}
	return s.a.readAt(cur.A)
}

func (s *InterleaveSeq[E, CA, CB]) Inc(cur *InterleaveCursor[CA, CB]) {
	if cur.OnB {
		s.b.inc(&cur.B)
	} else {
		s.a.inc(&cur.A)
	}
	cur.OnB = !cur.OnB
}

func (s *InterleaveSeq[E, CA, CB]) Dec(cur *InterleaveCursor[CA, CB]) {
	if cur.OnB {
		s.a.dec(&cur.A)
	} else {
		s.b.dec(&cur.B)
	}
	cur.OnB = !cur.OnB
}

func (s *InterleaveSeq[E, CA, CB]) index(cur InterleaveCursor[CA, CB]) int {
	return s.a.distance(s.a.first(), cur.A) + s.b.distance(s.b.first(), cur.B)
}

func (s *InterleaveSeq[E, CA, CB]) at(index int) InterleaveCursor[CA, CB] {
	cur := s.First()
	s.a.incBy(&cur.A, (index+1)/2)
	s.b.incBy(&cur.B, index/2)
	cur.OnB = index%2 == 1
	return cur
}

func (s *InterleaveSeq[E, CA, CB]) IncBy(cur *InterleaveCursor[CA, CB], offset int) {
	*cur = s.at(s.index(*cur) + offset)
}

func (s *InterleaveSeq[E, CA, CB]) Distance(from, to InterleaveCursor[CA, CB]) int {
	return s.index(to) - s.index(from)
}

func (s *InterleaveSeq[E, CA, CB]) Size() int {
	sa, sb := s.a.size(), s.b.size()
	if sa <= sb {
		return 2 * sa
	}
	return 2*sb + 1
}

func (s *InterleaveSeq[E, CA, CB]) Last() InterleaveCursor[CA, CB] {
	return s.at(s.Size())
}
