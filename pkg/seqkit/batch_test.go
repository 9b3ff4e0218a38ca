package seqkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

func TestBatch(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the last batch holds the rest", func(t *testcase.T) {
		b := seqkit.Batch(seqkit.Of(1, 2, 3, 4, 5), seqkit.BatchSize(2))
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, seqkit.Collect(b))
	})

	s.Test("the default batch size", func(t *testcase.T) {
		var sizes []int
		seqkit.ForEach(seqkit.Batch(seqkit.Ints(0, 100)), func(vs []int) { sizes = append(sizes, len(vs)) })
		assert.Equal(t, []int{64, 36}, sizes)

		sizes = nil
		seqkit.ForEach(seqkit.Batch(seqkit.Ints(0, 100), seqkit.BatchSize(0)), func(vs []int) { sizes = append(sizes, len(vs)) })
		assert.Equal(t, []int{64, 36}, sizes)
	})

	s.Test("an empty sequence has no batches", func(t *testcase.T) {
		assert.Empty(t, seqkit.Collect(seqkit.Batch(seqkit.Empty[int]())))
	})

	s.Test("batches are independent copies", func(t *testcase.T) {
		var (
			n       = t.Random.IntB(1, 50)
			size    = t.Random.IntB(1, 8)
			batches = seqkit.Collect(seqkit.Batch(seqkit.Ints(0, n), seqkit.BatchSize(size)))
			next    int
		)
		for _, b := range batches {
			assert.True(t, 0 < len(b) && len(b) <= size)
			for _, v := range b {
				assert.Equal(t, next, v)
				next++
			}
		}
		assert.Equal(t, n, next)
	})

	s.Test("a single-pass source is consumed once", func(t *testcase.T) {
		src := seqkit.FromSeq(seqkit.All(seqkit.Ints(0, 5)))
		b := seqkit.Batch(src, seqkit.BatchSize(3))
		assert.False(t, seqkit.IsMultipass(b))
		assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, seqkit.Collect(b))
		assert.True(t, seqkit.IsEmpty(src))
	})

	s.Test("stopping early releases the source", func(t *testcase.T) {
		b := seqkit.Batch(seqkit.Iota(0), seqkit.BatchSize(2))
		assert.Equal(t, [][]int{{0, 1}, {2, 3}}, seqkit.Collect(seqkit.Take(b, 2)))
		assert.NoError(t, b.Close())
		assert.True(t, seqkit.IsEmpty(b))
	})
}
