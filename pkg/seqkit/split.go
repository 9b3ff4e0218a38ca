package seqkit

type SplitCursor[C comparable] struct {
	Start C
	End   C
	Done  bool
}

// SplitSeq yields the parts of its upstream between delimiter elements.
type SplitSeq[E any, C comparable] struct {
	base  ops[E, C]
	delim func(E) bool
}

// Split cuts s at every element for which delim holds; the delimiters are not part of the output.
// Adjacent delimiters, as well as a leading or trailing one, produce empty parts,
// while an empty s produces no parts at all.
func Split[E any, C comparable](s Sequence[E, C], delim func(E) bool) *SplitSeq[E, C] {
	sp := &SplitSeq[E, C]{base: opsOf(s), delim: delim}
	require(&sp.base, CapMultipass, "Split")
	return sp
}

// SplitOn cuts s at every element equal to delim.
func SplitOn[E comparable, C comparable](s Sequence[E, C], delim E) *SplitSeq[E, C] {
	return Split(s, func(e E) bool { return e == delim })
}

func (s *SplitSeq[E, C]) Capabilities() Caps { return CapMultipass }

func (s *SplitSeq[E, C]) find(from C) C {
	for !s.base.isLast(from) && !s.delim(s.base.readAt(from)) {
		s.base.inc(&from)
	}
	return from
}

func (s *SplitSeq[E, C]) First() SplitCursor[C] {
	first := s.base.first()
	if s.base.isLast(first) {
		return SplitCursor[C]{Start: first, End: first, Done: true}
	}
	return SplitCursor[C]{Start: first, End: s.find(first)}
}

func (s *SplitSeq[E, C]) IsLast(cur SplitCursor[C]) bool { return cur.Done }

func (s *SplitSeq[E, C]) ReadAt(cur SplitCursor[C]) *SubrangeSeq[E, C] {
	return Slice(s.base.seq, cur.Start, cur.End)
}

func (s *SplitSeq[E, C]) Inc(cur *SplitCursor[C]) {
	if s.base.isLast(cur.End) {
		*cur = SplitCursor[C]{Start: cur.End, End: cur.End, Done: true}
		return
	}
	start := cur.End
	s.base.inc(&start)
	*cur = SplitCursor[C]{Start: start, End: s.find(start)}
}
