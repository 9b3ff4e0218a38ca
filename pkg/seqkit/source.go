package seqkit

import (
	"golang.org/x/exp/constraints"

	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/pkg/mathkit"
)

// SliceSeq is a contiguous sequence over a Go slice.
// Its cursors are indexes.
type SliceSeq[E any] struct {
	data []E
}

func FromSlice[E any](vs []E) *SliceSeq[E] { return &SliceSeq[E]{data: vs} }

func Of[E any](vs ...E) *SliceSeq[E] { return FromSlice(vs) }

// Empty returns a sequence without elements.
func Empty[E any]() *SliceSeq[E] { return FromSlice[E](nil) }

func (s *SliceSeq[E]) Capabilities() Caps { return CapContiguous | CapSwappable }

func (s *SliceSeq[E]) First() int { return 0 }

func (s *SliceSeq[E]) IsLast(cur int) bool { return len(s.data) <= cur }

func (s *SliceSeq[E]) ReadAt(cur int) E {
	s.checkIndex(cur)
	return s.data[cur]
}

// WriteAt replaces the element under the cursor.
func (s *SliceSeq[E]) WriteAt(cur int, v E) {
	s.checkIndex(cur)
	s.data[cur] = v
}

func (s *SliceSeq[E]) checkIndex(cur int) {
	check.That(0 <= cur && cur < len(s.data), ErrOutOfRange, "index %d of %d elements", cur, len(s.data))
}

func (s *SliceSeq[E]) Inc(cur *int) { *cur++ }

func (s *SliceSeq[E]) Dec(cur *int) { *cur-- }

func (s *SliceSeq[E]) IncBy(cur *int, offset int) { *cur += offset }

func (s *SliceSeq[E]) Distance(from, to int) int { return to - from }

func (s *SliceSeq[E]) Last() int { return len(s.data) }

func (s *SliceSeq[E]) Size() int { return len(s.data) }

func (s *SliceSeq[E]) Data() []E { return s.data }

func (s *SliceSeq[E]) Swap(a, b int) {
	s.checkIndex(a)
	s.checkIndex(b)
	s.data[a], s.data[b] = s.data[b], s.data[a]
}

func (s *SliceSeq[E]) Iterate() Context[E] {
	var i int
	return NewContext(func(pred func(E) bool) bool {
		for i < len(s.data) {
			v := s.data[i]
			i++
			if !pred(v) {
				return false
			}
		}
		return true
	})
}

// IotaSeq yields consecutive integers starting at From.
// Without an upper bound it is infinite.
// Its cursors are the elements themselves.
type IotaSeq[T constraints.Integer] struct {
	From    T
	To      T
	Bounded bool
}

// Iota returns the infinite sequence from, from+1, from+2, ...
func Iota[T constraints.Integer](from T) *IotaSeq[T] { return &IotaSeq[T]{From: from} }

// Ints returns the integers in the half open range [from, to).
func Ints[T constraints.Integer](from, to T) *IotaSeq[T] {
	check.That(from <= to, ErrInvalidArgument, "Ints(%d, %d): range end precedes its start", from, to)
	return &IotaSeq[T]{From: from, To: to, Bounded: true}
}

func (s *IotaSeq[T]) Capabilities() Caps {
	if s.Bounded {
		return CapRandomAccess | CapBounded | CapSized
	}
	return CapRandomAccess | CapInfinite
}

func (s *IotaSeq[T]) First() T { return s.From }

func (s *IotaSeq[T]) IsLast(cur T) bool { return s.Bounded && s.To <= cur }

func (s *IotaSeq[T]) ReadAt(cur T) T {
	check.That(!s.IsLast(cur), ErrOutOfRange, "Iota: %d is past %d", cur, s.To)
	return cur
}

func (s *IotaSeq[T]) Inc(cur *T) { *cur++ }

func (s *IotaSeq[T]) Dec(cur *T) { *cur-- }

func (s *IotaSeq[T]) IncBy(cur *T, offset int) { *cur = T(int(*cur) + offset) }

func (s *IotaSeq[T]) Distance(from, to T) int {
	if to < from {
		return -int(from - to)
	}
	return int(to - from)
}

func (s *IotaSeq[T]) Last() T {
	if !s.Bounded {
		unsupported(s, "Last")
	}
	return s.To
}

func (s *IotaSeq[T]) Size() int {
	if !s.Bounded {
		unsupported(s, "Size")
	}
	return s.Distance(s.From, s.To)
}

// RepeatSeq yields the same value over and over, N times when bounded.
type RepeatSeq[E any] struct {
	Value   E
	N       int
	Bounded bool
}

// Repeat returns the infinite sequence of v.
func Repeat[E any](v E) *RepeatSeq[E] { return &RepeatSeq[E]{Value: v} }

// RepeatN returns a sequence of n copies of v.
func RepeatN[E any](v E, n int) *RepeatSeq[E] {
	check.That(0 <= n, ErrInvalidArgument, "RepeatN: negative count %d", n)
	return &RepeatSeq[E]{Value: v, N: n, Bounded: true}
}

// Single returns a sequence with the only element v.
func Single[E any](v E) *RepeatSeq[E] { return RepeatN(v, 1) }

func (s *RepeatSeq[E]) Capabilities() Caps {
	if s.Bounded {
		return CapRandomAccess | CapBounded | CapSized
	}
	return CapRandomAccess | CapInfinite
}

func (s *RepeatSeq[E]) First() int { return 0 }

func (s *RepeatSeq[E]) IsLast(cur int) bool { return s.Bounded && s.N <= cur }

func (s *RepeatSeq[E]) ReadAt(cur int) E {
	check.That(!s.IsLast(cur), ErrOutOfRange, "Repeat: %d is past %d", cur, s.N)
	return s.Value
}

func (s *RepeatSeq[E]) Inc(cur *int) { *cur = mathkit.CheckedAdd(*cur, 1) }

func (s *RepeatSeq[E]) Dec(cur *int) { *cur-- }

func (s *RepeatSeq[E]) IncBy(cur *int, offset int) { *cur = mathkit.CheckedAdd(*cur, offset) }

func (s *RepeatSeq[E]) Distance(from, to int) int { return to - from }

func (s *RepeatSeq[E]) Last() int {
	if !s.Bounded {
		unsupported(s, "Last")
	}
	return s.N
}

func (s *RepeatSeq[E]) Size() int {
	if !s.Bounded {
		unsupported(s, "Size")
	}
	return s.N
}
