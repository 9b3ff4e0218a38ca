package seqkitmock_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
	"github.com/tcbrindle/flux-sub002/pkg/seqkit/seqkitmock"
)

func TestMockSequence(t *testing.T) {
	s := testcase.NewSpec(t)

	mock := testcase.Let(s, func(t *testcase.T) *seqkitmock.MockSequence[int, int] {
		ctrl := gomock.NewController(t)
		m := seqkitmock.NewMockSequence[int, int](ctrl)
		m.EXPECT().First().Return(0).AnyTimes()
		m.EXPECT().IsLast(gomock.Any()).DoAndReturn(func(cur int) bool { return 2 <= cur }).AnyTimes()
		m.EXPECT().ReadAt(gomock.Any()).DoAndReturn(func(cur int) int { return cur * 10 }).AnyTimes()
		return m
	})

	s.Test("a pipeline steps the source once per element", func(t *testcase.T) {
		mock.Get(t).EXPECT().Inc(gomock.Any()).Do(func(cur *int) { *cur++ }).Times(2)
		got := seqkit.Collect(seqkit.Map(mock.Get(t), func(v int) int { return v + 1 }))
		assert.Equal(t, []int{1, 11}, got)
	})

	s.Test("a plain sequence is multipass but nothing more", func(t *testcase.T) {
		caps := seqkit.CapsOf[int, int](mock.Get(t))
		assert.Equal(t, seqkit.CapMultipass, caps)
		assertPanics := func(blk func()) { assert.Panic(t, blk) }
		assertPanics(func() { seqkit.Reverse[int, int](mock.Get(t)) })
	})

	s.Test("front reads without stepping", func(t *testcase.T) {
		mock.Get(t).EXPECT().Inc(gomock.Any()).Times(0)
		assert.Equal(t, 0, seqkit.Front[int, int](mock.Get(t)).Value())
	})
}
