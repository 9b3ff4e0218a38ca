// Package optional provides a nullable single-value holder.
//
// Sequence algorithms use it as the uniform "nothing there" answer,
// e.g. the minimum of an empty sequence.
// Reading the value of an empty Optional is a precondition violation
// and is raised as a panic carrying ErrEmpty.
package optional

import (
	"fmt"

	g "github.com/anacrolix/generics"
	"go.llib.dev/frameless/pkg/errorkit"

	"github.com/tcbrindle/flux-sub002/internal/check"
)

const ErrEmpty errorkit.Error = "optional: value accessed on empty optional"

// Optional owns at most one T.
// The zero value is empty.
type Optional[T any] struct {
	opt g.Option[T]
}

func Some[T any](v T) Optional[T] { return Optional[T]{opt: g.Some(v)} }

func None[T any]() Optional[T] { return Optional[T]{opt: g.None[T]()} }

// FromTuple converts the comma-ok idiom into an Optional.
func FromTuple[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Optional[T]) HasValue() bool { return o.opt.Ok }

// Value returns the held value.
// Calling it on an empty Optional raises ErrEmpty.
func (o Optional[T]) Value() T {
	check.That(o.opt.Ok, ErrEmpty, "Optional[%T].Value", o.opt.Value)
	return o.opt.Value
}

func (o Optional[T]) ValueOr(alt T) T {
	if !o.opt.Ok {
		return alt
	}
	return o.opt.Value
}

func (o Optional[T]) Get() (T, bool) { return o.opt.Value, o.opt.Ok }

// Emplace stores v, replacing any previous value.
func (o *Optional[T]) Emplace(v T) { o.opt = g.Some(v) }

func (o *Optional[T]) Reset() { o.opt = g.None[T]() }

func (o Optional[T]) String() string {
	if !o.opt.Ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.opt.Value)
}

func Map[T, R any](o Optional[T], fn func(T) R) Optional[R] {
	if !o.opt.Ok {
		return None[R]()
	}
	return Some(fn(o.opt.Value))
}

func AndThen[T, R any](o Optional[T], fn func(T) Optional[R]) Optional[R] {
	if !o.opt.Ok {
		return None[R]()
	}
	return fn(o.opt.Value)
}

// Ref is the reference specialisation of Optional.
// It borrows the referred value instead of owning a copy,
// and a nil pointer is its empty state, so no extra flag is stored.
type Ref[T any] struct{ ptr *T }

func SomeRef[T any](ptr *T) Ref[T] { return Ref[T]{ptr: ptr} }

func NoneRef[T any]() Ref[T] { return Ref[T]{} }

func (r Ref[T]) HasValue() bool { return r.ptr != nil }

// Value returns the referenced pointer. Calling it on an empty Ref raises ErrEmpty.
func (r Ref[T]) Value() *T {
	check.That(r.ptr != nil, ErrEmpty, "Ref[%T].Value", *new(T))
	return r.ptr
}

// Deref reads through the reference.
func (r Ref[T]) Deref() T { return *r.Value() }

func (r Ref[T]) ValueOr(alt *T) *T {
	if r.ptr == nil {
		return alt
	}
	return r.ptr
}

func (r *Ref[T]) Reset() { r.ptr = nil }

// Copy returns an owning Optional holding a copy of the referred value.
func (r Ref[T]) Copy() Optional[T] {
	if r.ptr == nil {
		return None[T]()
	}
	return Some(*r.ptr)
}
