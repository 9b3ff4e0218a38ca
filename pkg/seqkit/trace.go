package seqkit

import (
	"context"
	"fmt"

	"go.llib.dev/frameless/pkg/logging"

	"github.com/tcbrindle/flux-sub002/internal/check"
	"github.com/tcbrindle/flux-sub002/port/option"
)

type TraceConfig struct {
	Logger *logging.Logger
	Name   string
	Level  logging.Level
}

func (c *TraceConfig) Init() {
	c.Logger = check.Logger
	c.Level = logging.LevelDebug
}

type TraceOption option.Option[TraceConfig]

// TraceLogger sets the logger receiving the entries.
// By default they go to the diagnostics logger, which is silent unless SEQKIT_LOG_LEVEL asks for debug entries.
func TraceLogger(l *logging.Logger) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Logger = l })
}

// TraceName labels the entries, which helps telling apart the stages of a pipeline.
func TraceName(name string) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Name = name })
}

func TraceLevel(lvl logging.Level) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Level = lvl })
}

// TraceSeq forwards every operation to its upstream and logs it.
type TraceSeq[E any, C comparable] struct {
	base ops[E, C]
	cfg  TraceConfig
}

// Trace returns s unchanged, except that every cursor operation is logged
// with the sequence name, the operation and the cursor it was applied to.
func Trace[E any, C comparable](s Sequence[E, C], opts ...TraceOption) *TraceSeq[E, C] {
	t := &TraceSeq[E, C]{base: opsOf(s), cfg: option.Use[TraceConfig](opts)}
	if t.cfg.Name == "" {
		t.cfg.Name = fmt.Sprintf("%T", s)
	}
	return t
}

func (t *TraceSeq[E, C]) log(op string, cur C) {
	t.cfg.Logger.Log(context.Background(), t.cfg.Level, "seqkit trace",
		logging.Field("sequence", t.cfg.Name),
		logging.Field("op", op),
		logging.Field("cursor", fmt.Sprintf("%v", cur)))
}

func (t *TraceSeq[E, C]) Capabilities() Caps { return t.base.caps }

func (t *TraceSeq[E, C]) First() C {
	cur := t.base.first()
	t.log("first", cur)
	return cur
}

func (t *TraceSeq[E, C]) IsLast(cur C) bool {
	t.log("is_last", cur)
	return t.base.isLast(cur)
}

func (t *TraceSeq[E, C]) ReadAt(cur C) E {
	t.log("read_at", cur)
	return t.base.readAt(cur)
}

func (t *TraceSeq[E, C]) Inc(cur *C) {
	t.log("inc", *cur)
	t.base.inc(cur)
}

func (t *TraceSeq[E, C]) Dec(cur *C) {
	t.log("dec", *cur)
	t.base.dec(cur)
}

func (t *TraceSeq[E, C]) IncBy(cur *C, offset int) {
	t.log(fmt.Sprintf("inc_by(%d)", offset), *cur)
	t.base.incBy(cur, offset)
}

func (t *TraceSeq[E, C]) Distance(from, to C) int {
	t.log("distance", from)
	return t.base.distance(from, to)
}

func (t *TraceSeq[E, C]) Last() C {
	cur := t.base.last()
	t.log("last", cur)
	return cur
}

func (t *TraceSeq[E, C]) Size() int { return t.base.size() }

func (t *TraceSeq[E, C]) Data() []E { return t.base.dataSlice() }

func (t *TraceSeq[E, C]) Swap(a, b C) {
	t.log("swap", a)
	t.base.swap(a, b)
}
