package seqkit_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

func TestReverse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields the elements back to front", func(t *testcase.T) {
		r := seqkit.Reverse(seqkit.Of(1, 2, 3))
		assert.Equal(t, []int{3, 2, 1}, seqkit.Collect(r))
		assert.Equal(t, 3, seqkit.Size(r))
		assert.Equal(t, 3, seqkit.At(r, 0))
		assert.Equal(t, 1, seqkit.At(r, 2))
	})

	s.Test("reversing twice restores the order", func(t *testcase.T) {
		vs := randomInts(t, t.Random.IntB(0, 30))
		rr := seqkit.Reverse(seqkit.Reverse(seqkit.FromSlice(vs)))
		assert.True(t, seqkit.Equal(seqkit.FromSlice(vs), rr))
		assert.True(t, seqkit.IsRandomAccess(rr))
	})

	s.Test("a filtered sequence can be reversed", func(t *testcase.T) {
		even := seqkit.Filter(seqkit.Ints(1, 7), func(v int) bool { return v%2 == 0 })
		assert.Equal(t, []int{6, 4, 2}, seqkit.Collect(seqkit.Reverse(even)))
	})

	s.Test("walking a reversed sequence backwards gives the original order", func(t *testcase.T) {
		r := seqkit.Reverse(seqkit.Of(1, 2, 3))
		assert.Equal(t, []int{1, 2, 3}, walkBack(r, r.Last()))
	})

	s.Test("sorting through the view sorts the upstream in descending order", func(t *testcase.T) {
		var (
			vs  = randomInts(t, t.Random.IntB(0, 50))
			src = seqkit.FromSlice(slices.Clone(vs))
		)
		seqkit.Sort(seqkit.Reverse(src))
		slices.Sort(vs)
		slices.Reverse(vs)
		assert.Equal(t, vs, seqkit.Data(src))
	})

	s.Test("front and back", func(t *testcase.T) {
		r := seqkit.Reverse(seqkit.Of(1, 2, 3))
		assert.Equal(t, 3, seqkit.Front(r).Value())
		assert.Equal(t, 1, seqkit.Back(r).Value())
		assert.False(t, seqkit.Back(seqkit.Reverse(seqkit.Empty[int]())).HasValue())
	})
}

func TestInterleave(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it alternates", func(t *testcase.T) {
		il := seqkit.Interleave(seqkit.Of(1, 3, 5), seqkit.Of(2, 4, 6))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seqkit.Collect(il))
		assert.Equal(t, 6, seqkit.Size(il))
	})

	s.Test("two infinite sides make it infinite", func(t *testcase.T) {
		il := seqkit.Interleave(seqkit.Iota(0), seqkit.Iota(100))
		assert.True(t, seqkit.IsInfinite(il))
		assert.Equal(t, []int{0, 100, 1, 101}, seqkit.Collect(seqkit.Take(il, 4)))
		assert.False(t, seqkit.IsInfinite(seqkit.Interleave(seqkit.Iota(0), seqkit.Ints(0, 3))))
	})

	s.Test("it ends when the side whose turn it is runs out", func(t *testcase.T) {
		long := seqkit.Interleave(seqkit.Of(1, 3, 5), seqkit.Of(2))
		assert.Equal(t, []int{1, 2, 3}, seqkit.Collect(long))
		assert.Equal(t, 3, seqkit.Size(long))

		short := seqkit.Interleave(seqkit.Of(1), seqkit.Of(2, 4, 6))
		assert.Equal(t, []int{1, 2}, seqkit.Collect(short))
		assert.Equal(t, 2, seqkit.Size(short))
	})

	s.Test("random access and walking back agree with iteration", func(t *testcase.T) {
		var (
			a  = seqkit.FromSlice(randomInts(t, t.Random.IntB(0, 10)))
			b  = seqkit.FromSlice(randomInts(t, t.Random.IntB(0, 10)))
			il = seqkit.Interleave(a, b)
		)
		all := seqkit.Collect(il)
		assert.Equal(t, len(all), seqkit.Size(il))
		assert.Equal(t, len(all), seqkit.Distance(il, il.First(), il.Last()))
		for i, v := range all {
			assert.Equal(t, v, seqkit.At(il, i))
		}
		back := walkBack(il, il.Last())
		slices.Reverse(back)
		assert.Equal(t, len(all), len(back))
		for i := range back {
			assert.Equal(t, all[i], back[i])
		}
	})
}
