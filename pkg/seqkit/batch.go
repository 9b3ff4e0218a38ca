package seqkit

import (
	"github.com/tcbrindle/flux-sub002/port/option"
)

type BatchConfig struct {
	Size int
}

func (c *BatchConfig) Init() { c.Size = defaultBatchSize }

const defaultBatchSize = 64

type BatchOption option.Option[BatchConfig]

// BatchSize sets the number of elements per batch; non-positive values fall back to the default.
func BatchSize(n int) BatchOption {
	return option.Func[BatchConfig](func(c *BatchConfig) {
		if n <= 0 {
			n = defaultBatchSize
		}
		c.Size = n
	})
}

// Batch collects the elements of s into slices of up to BatchSize elements.
// Unlike Chunk it copies the elements, so it works over single-pass sequences too,
// and the result is a single-pass sequence itself.
func Batch[E any, C comparable](s Sequence[E, C], opts ...BatchOption) *PullSeq[[]E] {
	var (
		c   = option.Use[BatchConfig](opts)
		ctx = Iterate(s)
	)
	return FromSeq(func(yield func([]E) bool) {
		var (
			vs    = make([]E, 0, c.Size)
			flush = func() bool {
				var cont = true
				if 0 < len(vs) {
					cont = yield(vs)
					vs = make([]E, 0, c.Size)
				}
				return cont
			}
			stopped bool
		)
		ctx.RunWhile(func(v E) bool {
			vs = append(vs, v)
			if c.Size <= len(vs) && !flush() {
				stopped = true
				return false
			}
			return true
		})
		if !stopped {
			flush()
		}
	})
}
