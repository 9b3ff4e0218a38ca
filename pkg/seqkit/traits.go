package seqkit

import (
	"reflect"
	"sync"

	"github.com/tcbrindle/flux-sub002/internal/check"
)

// Traits describes how to traverse a type that does not implement Sequence itself.
// First, IsLast, ReadAt and Inc are mandatory, the rest unlock further capabilities:
// Dec makes the sequence bidirectional, Dec+IncBy+Distance random access,
// Last bounded, Size sized, Data (together with random access and Last) contiguous.
type Traits[S any, E any, C comparable] struct {
	First    func(src S) C
	IsLast   func(src S, cur C) bool
	ReadAt   func(src S, cur C) E
	Inc      func(src S, cur *C)
	Dec      func(src S, cur *C)
	IncBy    func(src S, cur *C, offset int)
	Distance func(src S, from, to C) int
	Last     func(src S) C
	Size     func(src S) int
	Data     func(src S) []E
	Swap     func(src S, a, b C)
	// Caps adds capabilities the functions cannot express, such as CapInfinite.
	Caps Caps
	// SinglePass withholds CapMultipass, for sources whose cursors cannot be replayed.
	SinglePass bool
}

func (t *Traits[S, E, C]) validate() {
	check.That(t.First != nil && t.IsLast != nil && t.ReadAt != nil && t.Inc != nil, ErrInvalidArgument,
		"Traits[%s] needs First, IsLast, ReadAt and Inc", reflect.TypeFor[S]())
}

func (t *Traits[S, E, C]) caps() Caps {
	var c = t.Caps
	if !t.SinglePass {
		c |= CapMultipass
	}
	if t.Dec != nil {
		c |= CapBidirectional
		if t.IncBy != nil && t.Distance != nil {
			c |= CapRandomAccess
		}
	}
	if t.Last != nil {
		c |= CapBounded
	}
	if t.Size != nil {
		c |= CapSized
	}
	if t.Data != nil && c.Has(CapRandomAccess|CapBounded) {
		c |= CapContiguous
	}
	if t.Swap != nil {
		c |= CapSwappable
	}
	return c
}

// Adapted is a value of an external type traversed through its Traits.
type Adapted[S any, E any, C comparable] struct {
	Source S
	traits *Traits[S, E, C]
}

// Adapt wraps src so that it can be used wherever a Sequence is expected.
func Adapt[S any, E any, C comparable](src S, traits Traits[S, E, C]) *Adapted[S, E, C] {
	traits.validate()
	return &Adapted[S, E, C]{Source: src, traits: &traits}
}

func (a *Adapted[S, E, C]) Capabilities() Caps { return a.traits.caps() }

func (a *Adapted[S, E, C]) First() C { return a.traits.First(a.Source) }

func (a *Adapted[S, E, C]) IsLast(cur C) bool { return a.traits.IsLast(a.Source, cur) }

func (a *Adapted[S, E, C]) ReadAt(cur C) E { return a.traits.ReadAt(a.Source, cur) }

func (a *Adapted[S, E, C]) Inc(cur *C) { a.traits.Inc(a.Source, cur) }

func (a *Adapted[S, E, C]) Dec(cur *C) {
	if a.traits.Dec == nil {
		unsupported(a, "Dec")
	}
	a.traits.Dec(a.Source, cur)
}

func (a *Adapted[S, E, C]) IncBy(cur *C, offset int) {
	if a.traits.IncBy == nil {
		unsupported(a, "IncBy")
	}
	a.traits.IncBy(a.Source, cur, offset)
}

func (a *Adapted[S, E, C]) Distance(from, to C) int {
	if a.traits.Distance == nil {
		unsupported(a, "Distance")
	}
	return a.traits.Distance(a.Source, from, to)
}

func (a *Adapted[S, E, C]) Last() C {
	if a.traits.Last == nil {
		unsupported(a, "Last")
	}
	return a.traits.Last(a.Source)
}

func (a *Adapted[S, E, C]) Size() int {
	switch {
	case a.traits.Size != nil:
		return a.traits.Size(a.Source)
	case a.traits.caps().Has(CapRandomAccess | CapBounded):
		return a.Distance(a.First(), a.Last())
	default:
		unsupported(a, "Size")
		return 0
	}
}

func (a *Adapted[S, E, C]) Data() []E {
	if !a.traits.caps().Has(CapContiguous) {
		unsupported(a, "Data")
	}
	return a.traits.Data(a.Source)
}

func (a *Adapted[S, E, C]) Swap(x, y C) {
	if a.traits.Swap == nil {
		unsupported(a, "Swap")
	}
	a.traits.Swap(a.Source, x, y)
}

var registry = struct {
	mutex sync.RWMutex
	byTyp map[reflect.Type]any
}{byTyp: make(map[reflect.Type]any)}

// Register makes values of type S resolvable through Lookup.
// A later registration for the same type replaces the earlier one.
func Register[S any, E any, C comparable](traits Traits[S, E, C]) {
	traits.validate()
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.byTyp[reflect.TypeFor[S]()] = &traits
}

// Unregister removes the Traits registered for S.
func Unregister[S any]() {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	delete(registry.byTyp, reflect.TypeFor[S]())
}

// Lookup resolves src into a Sequence.
// Values implementing Sequence are returned as they are,
// a []E becomes a slice sequence, and other types are resolved through their registered Traits.
func Lookup[E any, C comparable](src any) (Sequence[E, C], error) {
	if s, ok := src.(Sequence[E, C]); ok {
		return s, nil
	}
	if vs, ok := src.([]E); ok {
		if s, ok := any(FromSlice(vs)).(Sequence[E, C]); ok {
			return s, nil
		}
	}
	registry.mutex.RLock()
	traits, ok := registry.byTyp[reflect.TypeOf(src)]
	registry.mutex.RUnlock()
	if !ok {
		return nil, ErrNotASource.F("%T", src)
	}
	adapter, ok := traits.(interface {
		adapt(src any) (Sequence[E, C], bool)
	})
	if !ok {
		return nil, ErrNotASource.F("%T is registered with a different element or cursor type", src)
	}
	s, ok := adapter.adapt(src)
	if !ok {
		return nil, ErrNotASource.F("%T", src)
	}
	return s, nil
}

func (t *Traits[S, E, C]) adapt(src any) (Sequence[E, C], bool) {
	v, ok := src.(S)
	if !ok {
		return nil, false
	}
	return &Adapted[S, E, C]{Source: v, traits: t}, true
}
