package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// Fill writes v to every element of s.
func Fill[E any, C comparable](s Sequence[E, C], v E) {
	o := opsOf(s)
	if o.writer == nil {
		unsupported(s, "Fill")
	}
	for cur := o.first(); !o.isLast(cur); o.inc(&cur) {
		o.writeAt(cur, v)
	}
}

// OutputTo writes the elements of src over the leading elements of dst,
// and returns the dst cursor after the last written element.
// dst must be at least as long as src.
func OutputTo[E any, C, CD comparable](src Sequence[E, C], dst Sequence[E, CD]) CD {
	var (
		so = opsOf(src)
		do = opsOf(dst)
	)
	if do.writer == nil && (so.data == nil || do.data == nil) {
		unsupported(dst, "OutputTo")
	}
	if so.data != nil && do.data != nil {
		from, to := so.dataSlice(), do.dataSlice()
		check.That(len(from) <= len(to), ErrOutOfRange,
			"OutputTo: %d elements do not fit into %d", len(from), len(to))
		copy(to, from)
		cur := do.first()
		do.incBy(&cur, len(from))
		return cur
	}
	cur := do.first()
	ForEach(src, func(e E) {
		check.That(!do.isLast(cur), ErrOutOfRange, "OutputTo: %T is shorter than the source", dst)
		do.writeAt(cur, e)
		do.inc(&cur)
	})
	return cur
}

// InplaceReverse reverses the order of the elements of s by swapping them.
func InplaceReverse[E any, C comparable](s Sequence[E, C]) {
	o := opsOf(s)
	require(&o, CapBidirectional|CapBounded|CapSwappable, "InplaceReverse")
	lo, hi := o.first(), o.last()
	for lo != hi {
		o.dec(&hi)
		if lo == hi {
			return
		}
		o.swap(lo, hi)
		o.inc(&lo)
	}
}

// SwapElements exchanges the elements of a and b position by position
// until either runs out, and returns the number of exchanged pairs.
func SwapElements[E any, CA, CB comparable](a Sequence[E, CA], b Sequence[E, CB]) int {
	oa, ob := opsOf(a), opsOf(b)
	if oa.writer == nil {
		unsupported(a, "SwapElements")
	}
	if ob.writer == nil {
		unsupported(b, "SwapElements")
	}
	var (
		ca, cb = oa.first(), ob.first()
		n      int
	)
	for ; !oa.isLast(ca) && !ob.isLast(cb); oa.inc(&ca) {
		x, y := oa.readAt(ca), ob.readAt(cb)
		oa.writeAt(ca, y)
		ob.writeAt(cb, x)
		ob.inc(&cb)
		n++
	}
	return n
}
