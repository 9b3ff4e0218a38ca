package seqkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

func ExampleFromSlice() {
	s := seqkit.FromSlice([]string{"a", "b", "c"})
	for cur := s.First(); !s.IsLast(cur); s.Inc(&cur) {
		_ = s.ReadAt(cur) // "a", "b", "c"
	}
}

func TestFromSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		vs := make([]int, t.Random.IntB(1, 16))
		for i := range vs {
			vs[i] = t.Random.Int()
		}
		return vs
	})
	subject := testcase.Let(s, func(t *testcase.T) *seqkit.SliceSeq[int] {
		return seqkit.FromSlice(values.Get(t))
	})

	s.Test("it traverses the slice in order", func(t *testcase.T) {
		assert.Equal(t, values.Get(t), seqkit.Collect(subject.Get(t)))
	})

	s.Test("it is sized and bounded", func(t *testcase.T) {
		seq := subject.Get(t)
		assert.Equal(t, len(values.Get(t)), seqkit.Size(seq))
		assert.Equal(t, len(values.Get(t)), seq.Last())
		assert.Equal(t, len(values.Get(t)), seqkit.Distance(seq, seq.First(), seq.Last()))
	})

	s.Test("random access reads by index", func(t *testcase.T) {
		index := t.Random.IntN(len(values.Get(t)))
		assert.Equal(t, values.Get(t)[index], seqkit.At(subject.Get(t), index))
	})

	s.Test("Data exposes the backing slice", func(t *testcase.T) {
		seqkit.Data(subject.Get(t))[0] = 42
		assert.Equal(t, 42, values.Get(t)[0])
	})

	s.Test("WriteAt writes through the cursor", func(t *testcase.T) {
		seq := subject.Get(t)
		seq.WriteAt(seq.First(), -1)
		assert.Equal(t, -1, seqkit.Front(seq).Value())
	})

	s.Test("reading past the end is rejected", func(t *testcase.T) {
		seq := subject.Get(t)
		assertPanicIs(t, seqkit.ErrOutOfRange, func() { seq.ReadAt(seq.Last()) })
		assertPanicIs(t, seqkit.ErrOutOfRange, func() { seqkit.Read(seq, seq.Last()) })
		assertPanicIs(t, seqkit.ErrOutOfRange, func() { seqkit.At(seq, len(values.Get(t))) })
	})

	s.Test("Front and Back", func(t *testcase.T) {
		vs := values.Get(t)
		assert.Equal(t, vs[0], seqkit.Front(subject.Get(t)).Value())
		assert.Equal(t, vs[len(vs)-1], seqkit.Back(subject.Get(t)).Value())
		assert.False(t, seqkit.Front(seqkit.Empty[int]()).HasValue())
		assert.False(t, seqkit.Back(seqkit.Empty[int]()).HasValue())
	})
}

func TestIota(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it counts up without end", func(t *testcase.T) {
		from := t.Random.IntB(-100, 100)
		assert.Equal(t, []int{from, from + 1, from + 2}, seqkit.Collect(seqkit.Take(seqkit.Iota(from), 3)))
	})

	s.Test("Ints is the half open range", func(t *testcase.T) {
		assert.Equal(t, []int{3, 4, 5, 6}, seqkit.Collect(seqkit.Ints(3, 7)))
		assert.Equal(t, 4, seqkit.Size(seqkit.Ints(3, 7)))
		assert.True(t, seqkit.IsEmpty(seqkit.Ints(3, 3)))
	})

	s.Test("random access jumps", func(t *testcase.T) {
		it := seqkit.Iota(0)
		assert.Equal(t, 1000, seqkit.Next(it, it.First(), 1000))
		assert.Equal(t, -5, seqkit.Distance(it, 10, 5))
	})

	s.Test("a reversed range is rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrInvalidArgument, func() { seqkit.Ints(7, 3) })
	})
}

func TestRepeat(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("RepeatN yields n copies", func(t *testcase.T) {
		n := t.Random.IntB(0, 10)
		vs := seqkit.Collect(seqkit.RepeatN("x", n))
		assert.Equal(t, n, len(vs))
		for _, v := range vs {
			assert.Equal(t, "x", v)
		}
	})

	s.Test("Repeat is infinite", func(t *testcase.T) {
		r := seqkit.Repeat(7)
		assert.True(t, seqkit.IsInfinite(r))
		assert.Equal(t, 7*5, seqkit.Sum(seqkit.Take(r, 5)))
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Count(r) })
	})

	s.Test("Single has one element", func(t *testcase.T) {
		assert.Equal(t, []string{"only"}, seqkit.Collect(seqkit.Single("only")))
	})

	s.Test("a negative count is rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrInvalidArgument, func() { seqkit.RepeatN(1, -1) })
	})
}

func TestAdvance(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it stops at the end and reports the shortfall", func(t *testcase.T) {
		seq := seqkit.Of(1, 2, 3)
		cur := seq.First()
		assert.Equal(t, 2, seqkit.Advance(seq, &cur, 5))
		assert.Equal(t, seq.Last(), cur)
	})

	s.Test("it walks sequences without random access", func(t *testcase.T) {
		seq := seqkit.Filter(seqkit.Of(1, 2, 3, 4), func(int) bool { return true })
		cur := seq.First()
		assert.Equal(t, 0, seqkit.Advance(seq, &cur, 2))
		assert.Equal(t, 3, seq.ReadAt(cur))
		assert.Equal(t, 1, seqkit.Advance(seq, &cur, 3))
		assert.True(t, seq.IsLast(cur))
	})

	s.Test("Prev steps back", func(t *testcase.T) {
		seq := seqkit.Of(1, 2, 3)
		assert.Equal(t, 3, seq.ReadAt(seqkit.Prev(seq, seq.Last())))
	})
}
