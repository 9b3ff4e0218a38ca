package optional_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcbrindle/flux-sub002/pkg/optional"
)

func panicErr(t *testing.T, blk func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err = r.(error)
	}()
	blk()
	return nil
}

func TestOptional(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var o optional.Optional[int]
		assert.False(t, o.HasValue())
		assert.Equal(t, 7, o.ValueOr(7))
		_, ok := o.Get()
		assert.False(t, ok)
		assert.Equal(t, "None", o.String())
	})

	t.Run("Some holds the value", func(t *testing.T) {
		o := optional.Some(42)
		require.True(t, o.HasValue())
		assert.Equal(t, 42, o.Value())
		assert.Equal(t, 42, o.ValueOr(7))
		assert.Equal(t, "Some(42)", o.String())
	})

	t.Run("reading an empty optional is a precondition violation", func(t *testing.T) {
		err := panicErr(t, func() { optional.None[string]().Value() })
		assert.True(t, errors.Is(err, optional.ErrEmpty))
	})

	t.Run("Emplace and Reset", func(t *testing.T) {
		var o optional.Optional[string]
		o.Emplace("foo")
		assert.Equal(t, "foo", o.Value())
		o.Reset()
		assert.False(t, o.HasValue())
	})

	t.Run("FromTuple", func(t *testing.T) {
		assert.True(t, optional.FromTuple(1, true).HasValue())
		assert.False(t, optional.FromTuple(1, false).HasValue())
	})

	t.Run("comparable when T is comparable", func(t *testing.T) {
		assert.True(t, optional.Some(1) == optional.Some(1))
		assert.True(t, optional.None[int]() == optional.Optional[int]{})
		assert.False(t, optional.Some(1) == optional.Some(2))
	})
}

func TestMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, optional.Some(4), optional.Map(optional.Some(2), double))
	assert.False(t, optional.Map(optional.None[int](), double).HasValue())

	half := func(n int) optional.Optional[int] {
		if n%2 != 0 {
			return optional.None[int]()
		}
		return optional.Some(n / 2)
	}
	assert.Equal(t, optional.Some(2), optional.AndThen(optional.Some(4), half))
	assert.False(t, optional.AndThen(optional.Some(3), half).HasValue())
}

func TestRef(t *testing.T) {
	v := 10
	r := optional.SomeRef(&v)
	require.True(t, r.HasValue())
	*r.Value() = 11
	assert.Equal(t, 11, v)
	assert.Equal(t, 11, r.Deref())

	c := r.Copy()
	v = 12
	assert.Equal(t, 11, c.Value())

	r.Reset()
	assert.False(t, r.HasValue())
	assert.False(t, r.Copy().HasValue())
	err := panicErr(t, func() { r.Value() })
	assert.True(t, errors.Is(err, optional.ErrEmpty))

	var alt int
	assert.Equal(t, &alt, optional.NoneRef[int]().ValueOr(&alt))
}
