package seqkit

// ScanSeq yields the running fold of its upstream.
// The accumulator lives in the adaptor, so the sequence is single-pass.
type ScanSeq[E, A any, C comparable] struct {
	base ops[E, C]
	fn   func(A, E) A
	init A
	acc  A
}

// Scan returns the partial folds of s: for 1, 2, 3 and addition it yields 1, 3, 6.
// First resets the accumulator to init.
func Scan[E, A any, C comparable](s Sequence[E, C], fn func(A, E) A, init A) *ScanSeq[E, A, C] {
	return &ScanSeq[E, A, C]{base: opsOf(s), fn: fn, init: init}
}

func (s *ScanSeq[E, A, C]) Capabilities() Caps { return s.base.caps & (CapSized | CapInfinite) }

func (s *ScanSeq[E, A, C]) step(cur C) {
	if !s.base.isLast(cur) {
		s.acc = s.fn(s.acc, s.base.readAt(cur))
	}
}

func (s *ScanSeq[E, A, C]) First() C {
	s.acc = s.init
	cur := s.base.first()
	s.step(cur)
	return cur
}

func (s *ScanSeq[E, A, C]) IsLast(cur C) bool { return s.base.isLast(cur) }

func (s *ScanSeq[E, A, C]) ReadAt(C) A { return s.acc }

func (s *ScanSeq[E, A, C]) Inc(cur *C) {
	s.base.inc(cur)
	s.step(*cur)
}

func (s *ScanSeq[E, A, C]) Size() int { return s.base.size() }

type PrescanCursor[C comparable] struct {
	Base C
	Done bool
}

// PrescanSeq yields the running fold of its upstream before each element is added,
// followed by the complete fold.
type PrescanSeq[E, A any, C comparable] struct {
	base ops[E, C]
	fn   func(A, E) A
	init A
	acc  A
}

// Prescan returns init followed by the partial folds of s: for 1, 2, 3 and addition from 0 it yields 0, 1, 3, 6.
func Prescan[E, A any, C comparable](s Sequence[E, C], fn func(A, E) A, init A) *PrescanSeq[E, A, C] {
	return &PrescanSeq[E, A, C]{base: opsOf(s), fn: fn, init: init}
}

func (p *PrescanSeq[E, A, C]) Capabilities() Caps { return p.base.caps & (CapSized | CapInfinite) }

func (p *PrescanSeq[E, A, C]) First() PrescanCursor[C] {
	p.acc = p.init
	return PrescanCursor[C]{Base: p.base.first()}
}

func (p *PrescanSeq[E, A, C]) IsLast(cur PrescanCursor[C]) bool { return cur.Done }

func (p *PrescanSeq[E, A, C]) ReadAt(PrescanCursor[C]) A { return p.acc }

func (p *PrescanSeq[E, A, C]) Inc(cur *PrescanCursor[C]) {
	if p.base.isLast(cur.Base) {
		cur.Done = true
		return
	}
	p.acc = p.fn(p.acc, p.base.readAt(cur.Base))
	p.base.inc(&cur.Base)
}

func (p *PrescanSeq[E, A, C]) Size() int { return p.base.size() + 1 }
