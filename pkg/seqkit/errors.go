package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrUnsupported is raised when an operation is requested that the sequence's capabilities do not imply,
	// e.g. Reverse over a sequence that cannot step backwards.
	ErrUnsupported errorkit.Error = "seqkit: operation is not supported by the sequence"
	// ErrOutOfRange is raised when a cursor is read or moved past the sequence boundaries.
	ErrOutOfRange errorkit.Error = "seqkit: cursor is out of range"
	// ErrInvalidArgument is raised for arguments such as a negative count or a non-positive stride.
	ErrInvalidArgument errorkit.Error = "seqkit: invalid argument"
	// ErrNotASource is returned by Lookup when a value cannot be used as a sequence.
	ErrNotASource errorkit.Error = "seqkit: type is not a sequence"
	// ErrReentrant is raised when an iteration context is run from inside its own callback.
	ErrReentrant errorkit.Error = "seqkit: iteration context is already running"
)
