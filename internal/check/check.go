// Package check is the precondition facility of the sequence packages.
//
// A violated precondition is a programming error: the caller read through an exhausted cursor,
// asked an empty optional for its value, or passed a negative count.
// Violations are always checked; they are logged through Logger and then raised as a panic
// that carries the error value, so errors.Is works on the recovered value.
package check

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

// EnvLogLevel names the environment variable that controls the diagnostic level.
const EnvLogLevel = "SEQKIT_LOG_LEVEL"

// Logger receives a diagnostic entry for every violation before the panic is raised.
// By default it only emits fatal entries, which keeps violations silent unless
// SEQKIT_LOG_LEVEL lowers the level.
var Logger = &logging.Logger{
	Out:   os.Stderr,
	Level: levelFromEnv(),
}

func levelFromEnv() logging.Level {
	raw, ok, err := env.Lookup[string](EnvLogLevel, env.DefaultValue(string(logging.LevelFatal)))
	if err != nil || !ok {
		return logging.LevelFatal
	}
	switch lvl := logging.Level(raw); lvl {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
		return lvl
	default:
		return logging.LevelFatal
	}
}

// That raises err when cond is false.
func That(cond bool, err errorkit.Error, format string, args ...any) {
	if cond {
		return
	}
	Fail(err, format, args...)
}

// Fail raises err formatted with the details.
func Fail(err errorkit.Error, format string, args ...any) {
	Raise(err.F(format, args...))
}

// Raise logs and panics with an already built error value.
func Raise(err error) {
	Logger.Error(context.Background(), "precondition violated", logging.ErrField(err))
	panic(err)
}
