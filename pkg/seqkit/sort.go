package seqkit

import (
	"cmp"
	"slices"
	"sort"

	"github.com/tcbrindle/flux-sub002/port/option"
)

type SortConfig struct {
	Stable bool
}

type SortOption option.Option[SortConfig]

// SortStable keeps equal elements in their original order.
func SortStable() SortOption {
	return option.Func[SortConfig](func(c *SortConfig) { c.Stable = true })
}

// Sort sorts the elements of s in place in ascending order.
func Sort[E cmp.Ordered, C comparable](s Sequence[E, C], opts ...SortOption) {
	SortFunc(s, cmp.Compare[E], opts...)
}

// SortFunc sorts the elements of s in place with the three-way comparator cmp.
// Contiguous sequences are sorted through their backing slice,
// anything else has to be random access, bounded and swappable.
func SortFunc[E any, C comparable](s Sequence[E, C], cmp func(a, b E) int, opts ...SortOption) {
	var (
		c = option.Use[SortConfig](opts)
		o = opsOf(s)
	)
	if o.data != nil {
		if c.Stable {
			slices.SortStableFunc(o.dataSlice(), cmp)
		} else {
			slices.SortFunc(o.dataSlice(), cmp)
		}
		return
	}
	require(&o, CapRandomAccess|CapBounded|CapSwappable, "Sort")
	sorter := &cursorSorter[E, C]{o: &o, first: o.first(), n: o.size(), cmp: cmp}
	if c.Stable {
		sort.Stable(sorter)
	} else {
		sort.Sort(sorter)
	}
}

type cursorSorter[E any, C comparable] struct {
	o     *ops[E, C]
	first C
	n     int
	cmp   func(a, b E) int
}

func (s *cursorSorter[E, C]) at(i int) C {
	cur := s.first
	s.o.incBy(&cur, i)
	return cur
}

func (s *cursorSorter[E, C]) Len() int { return s.n }

func (s *cursorSorter[E, C]) Less(i, j int) bool {
	return s.cmp(s.o.readAt(s.at(i)), s.o.readAt(s.at(j))) < 0
}

func (s *cursorSorter[E, C]) Swap(i, j int) { s.o.swap(s.at(i), s.at(j)) }
