package seqkit_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

func TestFill(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it overwrites every element", func(t *testcase.T) {
		vs := randomInts(t, t.Random.IntB(0, 10))
		seqkit.Fill(seqkit.FromSlice(vs), 7)
		assert.True(t, seqkit.AllOf(seqkit.FromSlice(vs), func(v int) bool { return v == 7 }))
	})

	s.Test("views write through", func(t *testcase.T) {
		vs := []int{1, 2, 3, 4, 5, 6}
		seqkit.Fill(seqkit.Stride(seqkit.Drop(seqkit.FromSlice(vs), 1), 2), 0)
		assert.Equal(t, []int{1, 0, 3, 0, 5, 0}, vs)

		seqkit.Fill(seqkit.Take(seqkit.Reverse(seqkit.FromSlice(vs)), 2), 9)
		assert.Equal(t, []int{1, 0, 3, 0, 9, 9}, vs)
	})

	s.Test("read-only and computed sequences are rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Fill(seqkit.ReadOnly(seqkit.Of(1)), 0) })
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Fill(seqkit.Ints(0, 3), 0) })
	})
}

func TestOutputTo(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("contiguous sequences are copied", func(t *testcase.T) {
		dst := make([]int, 5)
		end := seqkit.OutputTo(seqkit.Of(1, 2, 3), seqkit.FromSlice(dst))
		assert.Equal(t, []int{1, 2, 3, 0, 0}, dst)
		assert.Equal(t, 3, end)
	})

	s.Test("lazy sources are written element by element", func(t *testcase.T) {
		dst := make([]int, 4)
		end := seqkit.OutputTo(seqkit.Map(seqkit.Ints(1, 4), func(v int) int { return v * v }), seqkit.FromSlice(dst))
		assert.Equal(t, []int{1, 4, 9, 0}, dst)
		assert.Equal(t, 3, end)
	})

	s.Test("a short destination is rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrOutOfRange, func() {
			seqkit.OutputTo(seqkit.Of(1, 2, 3), seqkit.FromSlice(make([]int, 2)))
		})
		assertPanicIs(t, seqkit.ErrOutOfRange, func() {
			seqkit.OutputTo(seqkit.Ints(0, 3), seqkit.FromSlice(make([]int, 2)))
		})
	})
}

func TestInplaceReverse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it reverses the storage", func(t *testcase.T) {
		var (
			vs   = randomInts(t, t.Random.IntB(0, 20))
			want = slices.Clone(vs)
		)
		slices.Reverse(want)
		seqkit.InplaceReverse(seqkit.FromSlice(vs))
		assert.Equal(t, want, vs)
	})

	s.Test("it reverses through a view", func(t *testcase.T) {
		vs := []int{1, 2, 3, 4, 5}
		seqkit.InplaceReverse(seqkit.Drop(seqkit.FromSlice(vs), 2))
		assert.Equal(t, []int{1, 2, 5, 4, 3}, vs)
	})

	s.Test("a sequence without swap is rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.InplaceReverse(seqkit.ReadOnly(seqkit.Of(1, 2))) })
	})
}

func TestSwapElements(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it exchanges the common prefix", func(t *testcase.T) {
		a, b := []int{1, 2, 3}, []int{7, 8}
		assert.Equal(t, 2, seqkit.SwapElements(seqkit.FromSlice(a), seqkit.FromSlice(b)))
		assert.Equal(t, []int{7, 8, 3}, a)
		assert.Equal(t, []int{1, 2}, b)
	})

	s.Test("read-only sides are rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrUnsupported, func() {
			seqkit.SwapElements(seqkit.Of(1), seqkit.ReadOnly(seqkit.Of(2)))
		})
	})
}

func TestReadOnly(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it keeps traversal but drops mutation", func(t *testcase.T) {
		ro := seqkit.ReadOnly(seqkit.Of(1, 2, 3))
		assert.Equal(t, []int{1, 2, 3}, seqkit.Collect(ro))
		assert.True(t, seqkit.IsRandomAccess(ro))
		assert.True(t, seqkit.IsSized(ro))
		assert.False(t, seqkit.IsContiguous(ro))
		assert.False(t, seqkit.CapsOf(ro).Has(seqkit.CapSwappable))
	})
}

func TestCursors(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields the cursors of the upstream", func(t *testcase.T) {
		src := seqkit.Of("a", "b", "c")
		assert.Equal(t, []int{0, 1, 2}, seqkit.Collect(seqkit.Cursors(src)))
	})

	s.Test("the cursors read back the elements", func(t *testcase.T) {
		src := seqkit.Filter(seqkit.Ints(0, 10), func(v int) bool { return v%3 == 0 })
		got := seqkit.Collect(seqkit.Map(seqkit.Cursors(src), src.ReadAt))
		assert.Equal(t, seqkit.Collect(src), got)
	})

	s.Test("single-pass sequences are rejected", func(t *testcase.T) {
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Cursors(seqkit.FromSeq(seqkit.All(seqkit.Of(1)))) })
	})
}
