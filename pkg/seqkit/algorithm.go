package seqkit

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/tcbrindle/flux-sub002/pkg/optional"
)

// Fold combines the elements of s from the left, starting with init.
func Fold[E, A any, C comparable](s Sequence[E, C], fn func(A, E) A, init A) A {
	acc := init
	Iterate(s).RunWhile(func(e E) bool {
		acc = fn(acc, e)
		return true
	})
	return acc
}

// FoldFirst folds s using its first element as the initial value.
// It returns an empty optional for an empty s.
func FoldFirst[E any, C comparable](s Sequence[E, C], fn func(E, E) E) optional.Optional[E] {
	var acc optional.Optional[E]
	Iterate(s).RunWhile(func(e E) bool {
		if v, ok := acc.Get(); ok {
			acc.Emplace(fn(v, e))
		} else {
			acc.Emplace(e)
		}
		return true
	})
	return acc
}

// TryFold folds s until fn returns an error,
// in which case the accumulator so far is returned together with the error.
func TryFold[E, A any, C comparable](s Sequence[E, C], fn func(A, E) (A, error), init A) (A, error) {
	var (
		acc = init
		err error
	)
	Iterate(s).RunWhile(func(e E) bool {
		var next A
		next, err = fn(acc, e)
		if err != nil {
			return false
		}
		acc = next
		return true
	})
	return acc, err
}

func ForEach[E any, C comparable](s Sequence[E, C], fn func(E)) {
	Iterate(s).RunWhile(func(e E) bool {
		fn(e)
		return true
	})
}

// ForEachWhile calls fn on the elements until it returns false,
// and returns the cursor of the element it stopped at, or the end cursor.
func ForEachWhile[E any, C comparable](s Sequence[E, C], fn func(E) bool) C {
	cur := s.First()
	for ; !s.IsLast(cur); s.Inc(&cur) {
		if !fn(s.ReadAt(cur)) {
			break
		}
	}
	return cur
}

// Find returns the cursor of the first element equal to v, or the end cursor when there is none.
func Find[E comparable, C comparable](s Sequence[E, C], v E) C {
	return FindIf(s, func(e E) bool { return e == v })
}

func FindIf[E any, C comparable](s Sequence[E, C], pred func(E) bool) C {
	return ForEachWhile(s, func(e E) bool { return !pred(e) })
}

func FindIfNot[E any, C comparable](s Sequence[E, C], pred func(E) bool) C {
	return ForEachWhile(s, pred)
}

func Contains[E comparable, C comparable](s Sequence[E, C], v E) bool {
	return AnyOf(s, func(e E) bool { return e == v })
}

func CountEq[E comparable, C comparable](s Sequence[E, C], v E) int {
	return CountIf(s, func(e E) bool { return e == v })
}

func CountIf[E any, C comparable](s Sequence[E, C], pred func(E) bool) int {
	return Fold(s, func(n int, e E) int {
		if pred(e) {
			n++
		}
		return n
	}, 0)
}

// AnyOf reports whether pred holds for at least one element.
func AnyOf[E any, C comparable](s Sequence[E, C], pred func(E) bool) bool {
	return Iterate(s).RunWhile(func(e E) bool { return !pred(e) }) == Incomplete
}

// AllOf reports whether pred holds for every element; it is true for an empty s.
func AllOf[E any, C comparable](s Sequence[E, C], pred func(E) bool) bool {
	return Iterate(s).RunWhile(pred) == Complete
}

func NoneOf[E any, C comparable](s Sequence[E, C], pred func(E) bool) bool {
	return !AnyOf(s, pred)
}

type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

func Sum[E Number, C comparable](s Sequence[E, C]) E {
	return Fold(s, func(acc, e E) E { return acc + e }, 0)
}

func Product[E Number, C comparable](s Sequence[E, C]) E {
	return Fold(s, func(acc, e E) E { return acc * e }, 1)
}

// Min returns the first smallest element.
func Min[E cmp.Ordered, C comparable](s Sequence[E, C]) optional.Optional[E] {
	return MinFunc(s, cmp.Compare[E])
}

func MinFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) optional.Optional[E] {
	return FoldFirst(s, func(lo, e E) E {
		if cmp(e, lo) < 0 {
			return e
		}
		return lo
	})
}

// Max returns the last largest element.
func Max[E cmp.Ordered, C comparable](s Sequence[E, C]) optional.Optional[E] {
	return MaxFunc(s, cmp.Compare[E])
}

func MaxFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) optional.Optional[E] {
	return FoldFirst(s, func(hi, e E) E {
		if cmp(e, hi) < 0 {
			return hi
		}
		return e
	})
}

type MinMaxResult[E any] struct {
	Min E
	Max E
}

// MinMax returns the first smallest and the last largest element in a single pass.
func MinMax[E cmp.Ordered, C comparable](s Sequence[E, C]) optional.Optional[MinMaxResult[E]] {
	return MinMaxFunc(s, cmp.Compare[E])
}

func MinMaxFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) optional.Optional[MinMaxResult[E]] {
	var res optional.Optional[MinMaxResult[E]]
	Iterate(s).RunWhile(func(e E) bool {
		r, ok := res.Get()
		switch {
		case !ok:
			r = MinMaxResult[E]{Min: e, Max: e}
		default:
			if cmp(e, r.Min) < 0 {
				r.Min = e
			}
			if 0 <= cmp(e, r.Max) {
				r.Max = e
			}
		}
		res.Emplace(r)
		return true
	})
	return res
}

// FindMin returns the cursor of the first smallest element, or the end cursor for an empty s.
func FindMin[E cmp.Ordered, C comparable](s Sequence[E, C]) C {
	return FindMinFunc(s, cmp.Compare[E])
}

func FindMinFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) C {
	return findBest(s, "FindMin", func(e, best E) bool { return cmp(e, best) < 0 })
}

// FindMax returns the cursor of the last largest element, or the end cursor for an empty s.
func FindMax[E cmp.Ordered, C comparable](s Sequence[E, C]) C {
	return FindMaxFunc(s, cmp.Compare[E])
}

func FindMaxFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) C {
	return findBest(s, "FindMax", func(e, best E) bool { return 0 <= cmp(e, best) })
}

// FindMinMax returns the cursors of the first smallest and the last largest element.
// Both are the end cursor for an empty s.
func FindMinMax[E cmp.Ordered, C comparable](s Sequence[E, C]) MinMaxResult[C] {
	return FindMinMaxFunc(s, cmp.Compare[E])
}

func FindMinMaxFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int) MinMaxResult[C] {
	o := opsOf(s)
	require(&o, CapMultipass, "FindMinMax")
	var (
		cur = o.first()
		res = MinMaxResult[C]{Min: cur, Max: cur}
	)
	for ; !o.isLast(cur); o.inc(&cur) {
		e := o.readAt(cur)
		if cmp(e, o.readAt(res.Min)) < 0 {
			res.Min = cur
		}
		if 0 <= cmp(e, o.readAt(res.Max)) {
			res.Max = cur
		}
	}
	return res
}

// findBest walks s and keeps the cursor of the element for which better last held.
// The returned cursor is read again later, so s has to be multipass.
func findBest[E any, C comparable](s Sequence[E, C], name string, better func(e, best E) bool) C {
	o := opsOf(s)
	require(&o, CapMultipass, name)
	var (
		cur  = o.first()
		best = cur
	)
	for ; !o.isLast(cur); o.inc(&cur) {
		if better(o.readAt(cur), o.readAt(best)) {
			best = cur
		}
	}
	return best
}

// Equal reports whether a and b have the same elements in the same order.
func Equal[E comparable, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) bool {
	return EqualFunc(a, b, func(x, y E) bool { return x == y })
}

func EqualFunc[A, B any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB], eq func(A, B) bool) bool {
	oa, ob := opsOf(a), opsOf(b)
	if oa.sized != nil && ob.sized != nil && oa.size() != ob.size() {
		return false
	}
	ca, cb := oa.first(), ob.first()
	for !oa.isLast(ca) && !ob.isLast(cb) {
		if !eq(oa.readAt(ca), ob.readAt(cb)) {
			return false
		}
		oa.inc(&ca)
		ob.inc(&cb)
	}
	return oa.isLast(ca) && ob.isLast(cb)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[E cmp.Ordered, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) int {
	return CompareFunc(a, b, cmp.Compare[E])
}

func CompareFunc[A, B any, CA, CB comparable](a Sequence[A, CA], b Sequence[B, CB], cmp func(A, B) int) int {
	ca, cb := a.First(), b.First()
	for ; !a.IsLast(ca) && !b.IsLast(cb); a.Inc(&ca) {
		if c := cmp(a.ReadAt(ca), b.ReadAt(cb)); c != 0 {
			return c
		}
		b.Inc(&cb)
	}
	switch aEnd, bEnd := a.IsLast(ca), b.IsLast(cb); {
	case aEnd && bEnd:
		return 0
	case aEnd:
		return -1
	default:
		return 1
	}
}

// Collect copies the elements of s into a new slice.
func Collect[E any, C comparable](s Sequence[E, C]) []E {
	var (
		o  = opsOf(s)
		vs []E
	)
	if o.has(CapInfinite) {
		unsupported(s, "Collect")
	}
	if o.sized != nil || (o.ra != nil && o.bounded != nil) {
		vs = make([]E, 0, o.size())
	}
	return AppendTo(vs, s)
}

// AppendTo appends the elements of s to dst and returns the extended slice.
func AppendTo[E any, C comparable](dst []E, s Sequence[E, C]) []E {
	ForEach(s, func(e E) { dst = append(dst, e) })
	return dst
}
