package seqkit

import (
	"strings"

	"github.com/tcbrindle/flux-sub002/internal/check"
)

// Caps is the set of capabilities a sequence supports.
type Caps uint16

const (
	// CapMultipass means cursors can be copied and each copy replayed independently.
	CapMultipass Caps = 1 << iota
	// CapBidirectional means cursors can be decremented.
	CapBidirectional
	// CapRandomAccess means cursors can jump and be measured in constant time.
	CapRandomAccess
	// CapContiguous means the elements are laid out in a slice returned by Data.
	CapContiguous
	// CapBounded means Last returns the past-the-end cursor in constant time.
	CapBounded
	// CapSized means Size returns the element count in constant time.
	CapSized
	// CapInfinite means IsLast never reports true.
	CapInfinite
	// CapSwappable means the elements under two cursors can be exchanged.
	CapSwappable
)

var capNames = []struct {
	cap  Caps
	name string
}{
	{CapMultipass, "multipass"},
	{CapBidirectional, "bidirectional"},
	{CapRandomAccess, "random-access"},
	{CapContiguous, "contiguous"},
	{CapBounded, "bounded"},
	{CapSized, "sized"},
	{CapInfinite, "infinite"},
	{CapSwappable, "swappable"},
}

// Has reports whether every capability of o is present in c.
func (c Caps) Has(o Caps) bool { return c&o == o }

func (c Caps) String() string {
	var names []string
	for _, cn := range capNames {
		if c.Has(cn.cap) {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "single-pass"
	}
	return strings.Join(names, "|")
}

// normalize closes the set under the capability hierarchy.
func (c Caps) normalize() Caps {
	if c.Has(CapContiguous) {
		c |= CapRandomAccess | CapBounded | CapSized
	}
	if c.Has(CapRandomAccess) {
		c |= CapBidirectional
	}
	if c.Has(CapBidirectional) {
		c |= CapMultipass
	}
	if c.Has(CapRandomAccess | CapBounded) {
		c |= CapSized
	}
	return c
}

// ops caches the capability interfaces of an upstream sequence,
// so adaptors resolve them once at composition time instead of on every step.
// Operations the upstream lacks are derived when possible and rejected with ErrUnsupported otherwise.
type ops[E any, C comparable] struct {
	seq     Sequence[E, C]
	caps    Caps
	native  Caps
	bidir   Bidirectional[E, C]
	ra      RandomAccess[E, C]
	bounded Bounded[E, C]
	sized   Sized[E, C]
	data    interface{ Data() []E }
	swapper Swappable[E, C]
	writer  Writable[E, C]
}

func opsOf[E any, C comparable](s Sequence[E, C]) ops[E, C] {
	check.That(s != nil, ErrInvalidArgument, "nil sequence")
	var (
		o       = ops[E, C]{seq: s}
		methods Caps
	)
	if v, ok := s.(Bidirectional[E, C]); ok {
		o.bidir = v
		methods |= CapBidirectional
	}
	if v, ok := s.(RandomAccess[E, C]); ok {
		o.ra = v
		methods |= CapRandomAccess
	}
	if v, ok := s.(Bounded[E, C]); ok {
		o.bounded = v
		methods |= CapBounded
	}
	if v, ok := s.(Sized[E, C]); ok {
		o.sized = v
		methods |= CapSized
	}
	if v, ok := s.(interface{ Data() []E }); ok {
		o.data = v
		methods |= CapContiguous
	}
	if v, ok := s.(Swappable[E, C]); ok {
		o.swapper = v
		methods |= CapSwappable
	}
	if v, ok := s.(Writable[E, C]); ok {
		o.writer = v
	}

	var declared Caps
	if c, ok := s.(Capable); ok {
		declared = c.Capabilities() & (methods | CapMultipass | CapInfinite)
	} else {
		declared = methods | CapMultipass
		if !declared.Has(CapRandomAccess | CapBounded) {
			declared &^= CapContiguous
		}
	}
	o.native = declared
	o.caps = declared.normalize()

	if !o.caps.Has(CapBidirectional) {
		o.bidir = nil
	}
	if !o.caps.Has(CapRandomAccess) {
		o.ra = nil
	}
	if !o.caps.Has(CapBounded) {
		o.bounded = nil
	}
	if !o.native.Has(CapSized) {
		o.sized = nil
	}
	if !o.caps.Has(CapContiguous) {
		o.data = nil
	}
	if !o.caps.Has(CapSwappable) {
		o.swapper = nil
	}
	return o
}

func (o *ops[E, C]) has(c Caps) bool { return o.caps.Has(c) }

func (o *ops[E, C]) first() C { return o.seq.First() }

func (o *ops[E, C]) isLast(cur C) bool { return o.seq.IsLast(cur) }

func (o *ops[E, C]) readAt(cur C) E { return o.seq.ReadAt(cur) }

func (o *ops[E, C]) inc(cur *C) { o.seq.Inc(cur) }

func (o *ops[E, C]) dec(cur *C) {
	if o.bidir == nil {
		unsupported(o.seq, "Dec")
	}
	o.bidir.Dec(cur)
}

func (o *ops[E, C]) incBy(cur *C, offset int) {
	if o.ra != nil {
		o.ra.IncBy(cur, offset)
		return
	}
	for ; 0 < offset; offset-- {
		o.seq.Inc(cur)
	}
	for ; offset < 0; offset++ {
		o.dec(cur)
	}
}

func (o *ops[E, C]) distance(from, to C) int {
	if o.ra != nil {
		return o.ra.Distance(from, to)
	}
	if !o.has(CapMultipass) {
		unsupported(o.seq, "Distance")
	}
	var n int
	for from != to {
		check.That(!o.seq.IsLast(from), ErrOutOfRange, "Distance: %T cursor is not reachable", o.seq)
		o.seq.Inc(&from)
		n++
	}
	return n
}

func (o *ops[E, C]) last() C {
	if o.bounded == nil {
		unsupported(o.seq, "Last")
	}
	return o.bounded.Last()
}

func (o *ops[E, C]) size() int {
	if o.sized != nil {
		return o.sized.Size()
	}
	if o.ra != nil && o.bounded != nil {
		return o.ra.Distance(o.seq.First(), o.bounded.Last())
	}
	unsupported(o.seq, "Size")
	return 0
}

// sizeOrInfinite reports the size, or ok=false for an infinite sequence.
func (o *ops[E, C]) sizeOrInfinite() (n int, ok bool) {
	if o.has(CapInfinite) {
		return 0, false
	}
	return o.size(), true
}

func (o *ops[E, C]) swap(a, b C) {
	if o.swapper == nil {
		unsupported(o.seq, "Swap")
	}
	o.swapper.Swap(a, b)
}

func (o *ops[E, C]) writeAt(cur C, v E) {
	if o.writer == nil {
		unsupported(o.seq, "WriteAt")
	}
	o.writer.WriteAt(cur, v)
}

func (o *ops[E, C]) dataSlice() []E {
	if o.data == nil {
		unsupported(o.seq, "Data")
	}
	return o.data.Data()
}

// advance moves the cursor by offset but never past the end of the sequence,
// and returns the part of offset that could not be taken.
// Moving backwards is not clamped.
func (o *ops[E, C]) advance(cur *C, offset int) int {
	switch {
	case 0 < offset:
		if o.ra != nil && o.has(CapInfinite) {
			o.ra.IncBy(cur, offset)
			return 0
		}
		if o.ra != nil && o.bounded != nil {
			if remaining := o.ra.Distance(*cur, o.bounded.Last()); remaining < offset {
				*cur = o.bounded.Last()
				return offset - remaining
			}
			o.ra.IncBy(cur, offset)
			return 0
		}
		for ; 0 < offset && !o.seq.IsLast(*cur); offset-- {
			o.seq.Inc(cur)
		}
		return offset
	case offset < 0:
		o.incBy(cur, offset)
		return 0
	default:
		return 0
	}
}

func unsupported(seq any, op string) {
	check.Fail(ErrUnsupported, "%s is not supported by %T", op, seq)
}

// require rejects a composition when the upstream lacks capabilities the adaptor needs.
func require[E any, C comparable](o *ops[E, C], need Caps, adaptor string) {
	check.That(o.has(need), ErrUnsupported,
		"%s requires a %s sequence, got %T (%s)", adaptor, need, o.seq, o.caps)
}

// CapsOf returns the capabilities of the sequence.
func CapsOf[E any, C comparable](s Sequence[E, C]) Caps {
	o := opsOf(s)
	return o.caps
}

func IsMultipass[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapMultipass)
}

func IsBidirectional[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapBidirectional)
}

func IsRandomAccess[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapRandomAccess)
}

func IsContiguous[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapContiguous)
}

func IsBounded[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapBounded)
}

func IsSized[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapSized)
}

func IsInfinite[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapInfinite)
}

// IsReversible reports whether Reverse accepts the sequence.
func IsReversible[E any, C comparable](s Sequence[E, C]) bool {
	return CapsOf(s).Has(CapBidirectional | CapBounded)
}
