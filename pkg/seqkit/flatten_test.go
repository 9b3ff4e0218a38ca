package seqkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

func TestFlatten(t *testing.T) {
	s := testcase.NewSpec(t)

	nested := testcase.Let(s, func(t *testcase.T) *seqkit.SliceSeq[*seqkit.SliceSeq[int]] {
		return seqkit.Of(seqkit.Empty[int](), seqkit.Of(1, 2), seqkit.Empty[int](), seqkit.Of(3))
	})

	s.Test("empty inner sequences are skipped", func(t *testcase.T) {
		f := seqkit.Flatten[int, int](nested.Get(t))
		assert.Equal(t, []int{1, 2, 3}, seqkit.Collect(f))
	})

	s.Test("stepping the cursors gives the same elements as iterating", func(t *testcase.T) {
		var (
			f  = seqkit.Flatten[int, int](nested.Get(t))
			vs []int
		)
		for cur := f.First(); !f.IsLast(cur); f.Inc(&cur) {
			vs = append(vs, f.ReadAt(cur))
		}
		assert.Equal(t, []int{1, 2, 3}, vs)
	})

	s.Test("it walks backwards over bidirectional inner sequences", func(t *testcase.T) {
		f := seqkit.Flatten[int, int](nested.Get(t))
		assert.True(t, seqkit.IsBidirectional(f))
		assert.Equal(t, []int{3, 2, 1}, walkBack(f, f.Last()))
	})

	s.Test("only empty inner sequences make it empty", func(t *testcase.T) {
		f := seqkit.Flatten[int, int](seqkit.Of(seqkit.Empty[int](), seqkit.Empty[int]()))
		assert.True(t, seqkit.IsEmpty(f))
		assert.Empty(t, seqkit.Collect(f))
	})

	s.Test("a stopped iteration resumes inside the current inner sequence", func(t *testcase.T) {
		var (
			ctx = seqkit.Iterate(seqkit.Flatten[int, int](nested.Get(t)))
			got []int
		)
		assert.Equal(t, seqkit.Incomplete, ctx.RunWhile(func(v int) bool {
			got = append(got, v)
			return v != 1
		}))
		assert.Equal(t, seqkit.Complete, ctx.RunWhile(func(v int) bool {
			got = append(got, v)
			return true
		}))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	s.Test("single-pass inner sequences make it single-pass", func(t *testcase.T) {
		pulled := func() *seqkit.FlattenSeq[int, int, *seqkit.PullSeq[int], int] {
			return seqkit.Flatten[int, int](seqkit.Of(seqkit.FromSeq(seqkit.All(seqkit.Of(1, 2, 3, 4)))))
		}
		assert.False(t, seqkit.IsMultipass(pulled()))
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Chunk(pulled(), 2) })
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Cycle(pulled()) })
		assert.Equal(t, []int{1, 2, 3, 4}, seqkit.Collect(pulled()))
	})

	s.Test("split parts can be joined back", func(t *testcase.T) {
		parts := seqkit.SplitOn(seqkit.Of(1, 0, 2, 3, 0, 4), 0)
		assert.Equal(t, []int{1, 2, 3, 4}, seqkit.Collect(seqkit.Flatten[int, int](parts)))
	})

	s.Test("flat map", func(t *testcase.T) {
		fm := seqkit.FlatMap(seqkit.Of(1, 2, 3), func(n int) seqkit.Sequence[int, int] {
			return seqkit.RepeatN(n, n)
		})
		assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, seqkit.Collect(fm))
		assert.Equal(t, 6, seqkit.Count(fm))
		assert.Equal(t, []int{1, 2, 2}, seqkit.Collect(seqkit.Take(fm, 3)))
	})
}

func TestScan(t *testing.T) {
	s := testcase.NewSpec(t)

	add := func(a, b int) int { return a + b }

	s.Test("scan yields the running sums", func(t *testcase.T) {
		sc := seqkit.Scan(seqkit.Ints(1, 6), add, 0)
		assert.Equal(t, []int{1, 3, 6, 10, 15}, seqkit.Collect(sc))
		assert.Equal(t, 5, seqkit.Size(sc))
		assert.False(t, seqkit.IsMultipass(sc))
	})

	s.Test("prescan starts with the initial value and ends with the total", func(t *testcase.T) {
		ps := seqkit.Prescan(seqkit.Ints(1, 6), add, 0)
		assert.Equal(t, []int{0, 1, 3, 6, 10, 15}, seqkit.Collect(ps))
		assert.Equal(t, 6, seqkit.Size(ps))
	})

	s.Test("prescan of an empty sequence yields the initial value", func(t *testcase.T) {
		init := t.Random.Int()
		assert.Equal(t, []int{init}, seqkit.Collect(seqkit.Prescan(seqkit.Empty[int](), add, init)))
	})

	s.Test("the last scan element is the fold", func(t *testcase.T) {
		var (
			vs  = randomInts(t, t.Random.IntB(1, 20))
			src = seqkit.FromSlice(vs)
		)
		scanned := seqkit.Collect(seqkit.Scan(src, add, 0))
		assert.Equal(t, seqkit.Fold(src, add, 0), scanned[len(scanned)-1])
	})

	s.Test("an infinite upstream keeps the scan infinite", func(t *testcase.T) {
		sc := seqkit.Scan(seqkit.Iota(1), add, 0)
		assert.True(t, seqkit.IsInfinite(sc))
		assertPanicIs(t, seqkit.ErrUnsupported, func() { seqkit.Collect(seqkit.Scan(seqkit.Iota(1), add, 0)) })

		head := seqkit.Take(seqkit.Scan(seqkit.Iota(1), add, 0), 3)
		assert.True(t, seqkit.IsSized(head))
		assert.Equal(t, 3, seqkit.Size(head))
		assert.Equal(t, []int{1, 3, 6}, seqkit.Collect(head))

		assert.True(t, seqkit.IsInfinite(seqkit.Prescan(seqkit.Iota(1), add, 0)))
	})

	s.Test("the accumulator type can differ from the element type", func(t *testcase.T) {
		sc := seqkit.Scan(seqkit.Of("a", "b", "c"), func(acc []string, v string) []string {
			return append(acc[:len(acc):len(acc)], v)
		}, nil)
		assert.Equal(t, [][]string{{"a"}, {"a", "b"}, {"a", "b", "c"}}, seqkit.Collect(sc))
	})
}
