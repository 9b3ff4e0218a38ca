package option_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"github.com/tcbrindle/flux-sub002/port/option"
)

type config struct {
	Name  string
	Limit int
}

func (c *config) Init() { c.Limit = 64 }

type Option option.Option[config]

func Name(n string) Option {
	return option.Func[config](func(c *config) { c.Name = n })
}

func Limit(n int) Option {
	return option.Func[config](func(c *config) { c.Limit = n })
}

func TestUse(t *testing.T) {
	t.Run("defaults come from Init", func(t *testing.T) {
		c := option.Use[config, Option](nil)
		assert.Equal(t, 64, c.Limit)
		assert.Empty(t, c.Name)
	})
	t.Run("options are applied in order", func(t *testing.T) {
		c := option.Use[config]([]Option{Name("a"), Limit(3), Name("b")})
		assert.Equal(t, "b", c.Name)
		assert.Equal(t, 3, c.Limit)
	})
}
