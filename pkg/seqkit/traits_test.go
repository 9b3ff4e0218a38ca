package seqkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

type node struct {
	val  int
	next *node
}

type list struct{ head *node }

func newList(vs ...int) *list {
	l := &list{}
	for i := len(vs) - 1; 0 <= i; i-- {
		l.head = &node{val: vs[i], next: l.head}
	}
	return l
}

var listTraits = seqkit.Traits[*list, int, *node]{
	First:  func(l *list) *node { return l.head },
	IsLast: func(_ *list, cur *node) bool { return cur == nil },
	ReadAt: func(_ *list, cur *node) int { return cur.val },
	Inc:    func(_ *list, cur **node) { *cur = (*cur).next },
}

type word string

var wordTraits = seqkit.Traits[word, byte, int]{
	First:    func(word) int { return 0 },
	IsLast:   func(w word, cur int) bool { return len(w) <= cur },
	ReadAt:   func(w word, cur int) byte { return w[cur] },
	Inc:      func(_ word, cur *int) { *cur++ },
	Dec:      func(_ word, cur *int) { *cur-- },
	IncBy:    func(_ word, cur *int, offset int) { *cur += offset },
	Distance: func(_ word, from, to int) int { return to - from },
	Last:     func(w word) int { return len(w) },
}

type buffer struct{ vs []int }

var bufferTraits = seqkit.Traits[*buffer, int, int]{
	First:    func(*buffer) int { return 0 },
	IsLast:   func(b *buffer, cur int) bool { return len(b.vs) <= cur },
	ReadAt:   func(b *buffer, cur int) int { return b.vs[cur] },
	Inc:      func(_ *buffer, cur *int) { *cur++ },
	Dec:      func(_ *buffer, cur *int) { *cur-- },
	IncBy:    func(_ *buffer, cur *int, offset int) { *cur += offset },
	Distance: func(_ *buffer, from, to int) int { return to - from },
	Last:     func(b *buffer) int { return len(b.vs) },
	Size:     func(b *buffer) int { return len(b.vs) },
	Data:     func(b *buffer) []int { return b.vs },
}

func TestAdapt(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a forward only type", func(t *testcase.T) {
		a := seqkit.Adapt(newList(1, 2, 3), listTraits)
		assert.Equal(t, []int{1, 2, 3}, seqkit.Collect(a))
		assert.True(t, seqkit.IsMultipass(a))
		assert.False(t, seqkit.IsBidirectional(a))
		assert.Equal(t, 3, seqkit.Count(a))
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Reverse(a) })
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Size(a) })
	})

	s.Test("the traits decide the capabilities", func(t *testcase.T) {
		a := seqkit.Adapt(word("abc"), wordTraits)
		caps := seqkit.CapsOf(a)
		assert.True(t, caps.Has(seqkit.CapRandomAccess|seqkit.CapBounded|seqkit.CapSized))
		assert.False(t, caps.Has(seqkit.CapContiguous))
		assert.Equal(t, 3, seqkit.Size(a))
		assert.Equal(t, "cba", string(seqkit.Collect(seqkit.Reverse(a))))
		assert.Equal(t, byte('b'), seqkit.At(a, 1))
	})

	s.Test("a single-pass source", func(t *testcase.T) {
		tr := listTraits
		tr.SinglePass = true
		a := seqkit.Adapt(newList(1, 2), tr)
		assert.False(t, seqkit.IsMultipass(a))
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Cycle(a) })
	})

	s.Test("contiguous sources are sorted in place", func(t *testcase.T) {
		b := &buffer{vs: []int{3, 1, 2}}
		a := seqkit.Adapt(b, bufferTraits)
		assert.True(t, seqkit.IsContiguous(a))
		seqkit.Sort(a)
		assert.Equal(t, []int{1, 2, 3}, b.vs)
	})

	s.Test("the mandatory functions are required", func(t *testcase.T) {
		tr := listTraits
		tr.Inc = nil
		assertPanicIs(t, seqkit.ErrInvalidArgument, func() { seqkit.Adapt(newList(), tr) })
		assertPanicIs(t, seqkit.ErrInvalidArgument, func() { seqkit.Register(tr) })
	})
}

func TestLookup(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sequences are returned as they are", func(t *testcase.T) {
		src := seqkit.Of(1, 2)
		got, err := seqkit.Lookup[int, int](src)
		assert.NoError(t, err)
		assert.True(t, seqkit.Equal(src, got))
	})

	s.Test("slices become sequences", func(t *testcase.T) {
		got, err := seqkit.Lookup[int, int]([]int{1, 2, 3})
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, seqkit.Collect(got))
	})

	s.Test("unknown types are rejected", func(t *testcase.T) {
		_, err := seqkit.Lookup[int, int](42)
		assert.True(t, errors.Is(err, seqkit.ErrNotASource))
	})

	s.Context("with registered traits", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			seqkit.Register(listTraits)
			t.Defer(seqkit.Unregister[*list])
		})

		s.Test("the type resolves", func(t *testcase.T) {
			got, err := seqkit.Lookup[int, *node](newList(4, 5))
			assert.NoError(t, err)
			assert.Equal(t, []int{4, 5}, seqkit.Collect(got))
		})

		s.Test("asking for other element types is rejected", func(t *testcase.T) {
			_, err := seqkit.Lookup[string, *node](newList(4, 5))
			assert.True(t, errors.Is(err, seqkit.ErrNotASource))
		})

		s.Test("unregistering removes it", func(t *testcase.T) {
			seqkit.Unregister[*list]()
			_, err := seqkit.Lookup[int, *node](newList(4, 5))
			assert.True(t, errors.Is(err, seqkit.ErrNotASource))
		})
	})
}
