package seqkit

import (
	"io"
	"iter"

	"github.com/tcbrindle/flux-sub002/internal/check"
)

// All returns a range-over-func iterator over the elements.
// Ranging over a multipass sequence twice visits the elements twice,
// while a single-pass sequence continues where the previous range stopped.
func All[E any, C comparable](s Sequence[E, C]) iter.Seq[E] {
	return func(yield func(E) bool) {
		Iterate(s).RunWhile(yield)
	}
}

// AllCursors returns an iterator over the cursor and element pairs.
func AllCursors[E any, C comparable](s Sequence[E, C]) iter.Seq2[C, E] {
	return func(yield func(C, E) bool) {
		for cur := s.First(); !s.IsLast(cur); s.Inc(&cur) {
			if !yield(cur, s.ReadAt(cur)) {
				return
			}
		}
	}
}

// PullSeq is a single-pass sequence fed by a pull function.
// Its cursors count the elements consumed so far.
// A PullSeq built over an iter.Seq owns a coroutine,
// which is released when the elements run out or when Close is called.
type PullSeq[E any] struct {
	src    iter.Seq[E]
	next   func() (E, bool)
	stop   func()
	head   E
	loaded bool
	done   bool
	pos    int
}

// FromSeq turns a range-over-func iterator into a single-pass sequence.
func FromSeq[E any](i iter.Seq[E]) *PullSeq[E] {
	check.That(i != nil, ErrInvalidArgument, "FromSeq: nil iterator")
	return &PullSeq[E]{src: i}
}

// FromFunc turns a generator into a single-pass sequence.
// The generator reports false when it has no more elements, and it is not called again after that.
func FromFunc[E any](next func() (E, bool)) *PullSeq[E] {
	check.That(next != nil, ErrInvalidArgument, "FromFunc: nil generator")
	return &PullSeq[E]{next: next}
}

// FromContext turns the context produced by mk into a single-pass sequence.
func FromContext[E any](mk func() Context[E]) *PullSeq[E] {
	return FromSeq(func(yield func(E) bool) {
		mk().RunWhile(yield)
	})
}

var _ io.Closer = (*PullSeq[int])(nil)

func (s *PullSeq[E]) Capabilities() Caps { return 0 }

func (s *PullSeq[E]) fill() {
	if s.loaded || s.done {
		return
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.src)
	}
	v, ok := s.next()
	if !ok {
		_ = s.Close()
		return
	}
	s.head, s.loaded = v, true
}

func (s *PullSeq[E]) First() int { return s.pos }

func (s *PullSeq[E]) IsLast(int) bool {
	s.fill()
	return s.done
}

func (s *PullSeq[E]) ReadAt(int) E {
	s.fill()
	check.That(!s.done, ErrOutOfRange, "PullSeq: read after the last element")
	return s.head
}

func (s *PullSeq[E]) Inc(cur *int) {
	s.fill()
	check.That(!s.done, ErrOutOfRange, "PullSeq: increment after the last element")
	var zero E
	s.head, s.loaded = zero, false
	s.pos++
	*cur = s.pos
}

func (s *PullSeq[E]) Iterate() Context[E] {
	return NewContext(func(pred func(E) bool) bool {
		for !s.IsLast(s.pos) {
			v := s.ReadAt(s.pos)
			s.Inc(&s.pos)
			if !pred(v) {
				return false
			}
		}
		return true
	})
}

// Close releases the underlying coroutine, after which the sequence reports no more elements.
func (s *PullSeq[E]) Close() error {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.done = true
	return nil
}

// Iterator is a pull style view of a sequence,
// in the Next/Value shape familiar from database/sql rows and json.Decoder.
type Iterator[E any, C comparable] struct {
	seq     Sequence[E, C]
	cur     C
	started bool
}

func ToIterator[E any, C comparable](s Sequence[E, C]) *Iterator[E, C] {
	return &Iterator[E, C]{seq: s}
}

// Next moves to the next element and reports whether there was one.
func (i *Iterator[E, C]) Next() bool {
	if !i.started {
		i.cur, i.started = i.seq.First(), true
	} else if !i.seq.IsLast(i.cur) {
		i.seq.Inc(&i.cur)
	}
	return !i.seq.IsLast(i.cur)
}

// Value returns the current element.
func (i *Iterator[E, C]) Value() E {
	check.That(i.started, ErrOutOfRange, "Iterator.Value called before Next")
	return Read(i.seq, i.cur)
}

// Cursor returns the position of the current element.
func (i *Iterator[E, C]) Cursor() C { return i.cur }

// PullIter is the shape of pull based iterators, such as Iterator.
type PullIter[E any] interface {
	Next() bool
	Value() E
}

// FromIterator turns a pull based iterator into a single-pass sequence.
// When the iterator implements io.Closer, it is closed once it runs out.
func FromIterator[E any](it PullIter[E]) *PullSeq[E] {
	var closed bool
	return FromFunc(func() (E, bool) {
		if !closed && it.Next() {
			return it.Value(), true
		}
		if c, ok := it.(io.Closer); ok && !closed {
			_ = c.Close()
		}
		closed = true
		var zero E
		return zero, false
	})
}
