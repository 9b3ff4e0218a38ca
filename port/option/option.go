// Package option implements the functional options used to configure adaptors.
package option

// Option adjusts one field or aspect of a Config.
type Option[Config any] interface {
	Apply(*Config)
}

// Func lets a plain closure act as an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Apply(c *Config) { fn(c) }

// Use builds a Config from the given options.
// When Config implements Init, it is called before the options are applied,
// which is the place to set non-zero defaults.
func Use[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if init, ok := any(&c).(initer); ok {
		init.Init()
	}
	for _, opt := range opts {
		opt.Apply(&c)
	}
	return c
}

type initer interface {
	Init()
}
