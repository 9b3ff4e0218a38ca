// Package mathkit holds the overflow-checked integer helpers used by cursor arithmetic.
package mathkit

import (
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"

	"github.com/tcbrindle/flux-sub002/internal/check"
)

const (
	ErrOverflow       errorkit.Error = "mathkit: integer overflow"
	ErrDivisionByZero errorkit.Error = "mathkit: division by zero"
)

type Int = constraints.Signed

// MaxInt is the largest value of T.
func MaxInt[T Int]() T {
	var zero T
	bits := 8 * unsafe.Sizeof(zero)
	return T(^uint64(0) >> (65 - bits))
}

// MinInt is the smallest value of T.
func MinInt[T Int]() T { return -MaxInt[T]() - 1 }

func CanIntSumOverflow[INT Int](a, b INT) bool {
	if 0 < b {
		return MaxInt[INT]()-b < a
	}
	return a < MinInt[INT]()-b
}

func CanIntSubOverflow[INT Int](a, b INT) bool {
	if b < 0 {
		return MaxInt[INT]()+b < a
	}
	return a < MinInt[INT]()+b
}

// CanIntMulOverflow multiplies with wraparound and checks whether division undoes it.
func CanIntMulOverflow[INT Int](x, y INT) bool {
	switch {
	case x == 0 || y == 0:
		return false
	case x == -1:
		return y == MinInt[INT]()
	case y == -1:
		return x == MinInt[INT]()
	}
	return (x*y)/y != x
}

type AInt = uint64

// AbsInt is |n|, which for MinInt does not fit into N itself.
func AbsInt[N Int](n N) AInt {
	if n < 0 {
		return ^AInt(n) + 1
	}
	return AInt(n)
}

// Add returns a+b and reports whether the result fits into the type.
func Add[INT Int](a, b INT) (INT, bool) {
	if CanIntSumOverflow(a, b) {
		return 0, false
	}
	return a + b, true
}

func Sub[INT Int](a, b INT) (INT, bool) {
	if CanIntSubOverflow(a, b) {
		return 0, false
	}
	return a - b, true
}

func Mul[INT Int](a, b INT) (INT, bool) {
	if CanIntMulOverflow(a, b) {
		return 0, false
	}
	return a * b, true
}

func CheckedAdd[INT Int](a, b INT) INT {
	n, ok := Add(a, b)
	check.That(ok, ErrOverflow, "%d + %d", a, b)
	return n
}

func CheckedSub[INT Int](a, b INT) INT {
	n, ok := Sub(a, b)
	check.That(ok, ErrOverflow, "%d - %d", a, b)
	return n
}

func CheckedMul[INT Int](a, b INT) INT {
	n, ok := Mul(a, b)
	check.That(ok, ErrOverflow, "%d * %d", a, b)
	return n
}

// CheckedDiv truncates towards zero like the built-in operator.
func CheckedDiv[INT Int](a, b INT) INT {
	check.That(b != 0, ErrDivisionByZero, "%d / 0", a)
	check.That(!(a == MinInt[INT]() && b == -1), ErrOverflow, "%d / %d", a, b)
	return a / b
}

func CheckedMod[INT Int](a, b INT) INT {
	check.That(b != 0, ErrDivisionByZero, "%d %% 0", a)
	if b == -1 {
		return 0
	}
	return a % b
}

// FloorDivMod splits n into quotient and a remainder in [0, d) for a positive d.
// The mixed-radix cursor arithmetic relies on the non-negative remainder.
func FloorDivMod[INT Int](n, d INT) (q, r INT) {
	check.That(d != 0, ErrDivisionByZero, "%d / 0", n)
	q, r = CheckedDiv(n, d), CheckedMod(n, d)
	if r < 0 {
		r = CheckedAdd(r, d)
		q = CheckedSub(q, 1)
	}
	return q, r
}
