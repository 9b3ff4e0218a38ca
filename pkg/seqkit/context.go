package seqkit

import (
	"github.com/tcbrindle/flux-sub002/internal/check"
)

// Status is the outcome of a RunWhile call.
type Status int

const (
	// Complete means every element was visited.
	Complete Status = iota
	// Incomplete means the predicate stopped the run early.
	Incomplete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "incomplete"
}

// State is the lifecycle position of an iteration context.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateComplete
	StateIncomplete
)

// Context is a push based traversal of a sequence.
//
// RunWhile calls pred with the elements in order until pred returns false or the elements run out.
// A stopped run can be resumed by another RunWhile call, which continues after the last visited element.
// Calling RunWhile from inside pred raises ErrReentrant,
// and once a context is complete every further run is a no-op returning Complete.
type Context[E any] interface {
	RunWhile(pred func(E) bool) Status
	State() State
}

// Iterable sequences provide their own iteration context,
// typically a fused one that avoids the cursor round trips of the generic implementation.
type Iterable[E any] interface {
	Iterate() Context[E]
}

// Iterate returns an iteration context over the sequence.
func Iterate[E any, C comparable](s Sequence[E, C]) Context[E] {
	if it, ok := s.(Iterable[E]); ok {
		return it.Iterate()
	}
	return cursorContext(s)
}

// NewContext builds a context from a run function.
// run must visit elements until pred returns false, and report whether it ran out of elements.
func NewContext[E any](run func(pred func(E) bool) (exhausted bool)) Context[E] {
	return &funcContext[E]{run: run}
}

type funcContext[E any] struct {
	state State
	run   func(pred func(E) bool) bool
}

func (c *funcContext[E]) State() State { return c.state }

func (c *funcContext[E]) RunWhile(pred func(E) bool) Status {
	switch c.state {
	case StateRunning:
		check.Fail(ErrReentrant, "RunWhile called from its own callback")
	case StateComplete:
		return Complete
	}
	c.state = StateRunning
	var exhausted bool
	defer func() {
		// a panicking pred leaves the context resumable
		if exhausted {
			c.state = StateComplete
		} else {
			c.state = StateIncomplete
		}
	}()
	if exhausted = c.run(pred); exhausted {
		return Complete
	}
	return Incomplete
}

func cursorContext[E any, C comparable](s Sequence[E, C]) Context[E] {
	o := opsOf(s)
	if !o.has(CapMultipass) {
		return singlePassContext(o)
	}
	var (
		started bool
		cur     C
	)
	return NewContext(func(pred func(E) bool) bool {
		if !started {
			cur, started = o.first(), true
		}
		for !o.isLast(cur) {
			ok := func() bool {
				defer o.inc(&cur)
				return pred(o.readAt(cur))
			}()
			if !ok {
				return false
			}
		}
		return true
	})
}

// singlePassContext delays the increment after a stopped run until the next run,
// so a source that pulls on Inc is not asked for an element nobody may want.
func singlePassContext[E any, C comparable](o ops[E, C]) Context[E] {
	var (
		started bool
		pending bool
		cur     C
	)
	return NewContext(func(pred func(E) bool) bool {
		if !started {
			cur, started = o.first(), true
		}
		if pending {
			o.inc(&cur)
			pending = false
		}
		for !o.isLast(cur) {
			pending = true
			if !pred(o.readAt(cur)) {
				return false
			}
			pending = false
			o.inc(&cur)
		}
		return true
	})
}

// runAll drives ctx to the end and reports whether pred accepted every element.
func runAll[E any](ctx Context[E], pred func(E) bool) bool {
	return ctx.RunWhile(pred) == Complete
}
