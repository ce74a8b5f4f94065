// Package exitcode defines named exit codes for the filehash CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

import (
	"errors"

	"github.com/CodexForgeBR/filehash/internal/filehash"
)

// Exit code constants. Higher codes take priority when several files fail.
const (
	Success              = 0 // Every file hashed, every expectation matched
	Error                = 1 // Invalid args, bad configuration
	IOFailure            = 2 // A file could not be opened or read
	UnsupportedAlgorithm = 3 // Unknown hash algorithm
	Mismatch             = 4 // Digest differs from the expected value
)

// ErrMismatch is returned when a computed digest differs from the expected
// one.
var ErrMismatch = errors.New("digest mismatch")

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case IOFailure:
		return "IOFailure"
	case UnsupportedAlgorithm:
		return "UnsupportedAlgorithm"
	case Mismatch:
		return "Mismatch"
	default:
		return "unknown"
	}
}

// FromError maps an error to its exit code. A nil error is Success.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrMismatch):
		return Mismatch
	case errors.Is(err, filehash.ErrUnsupportedAlgorithm):
		return UnsupportedAlgorithm
	case errors.Is(err, filehash.ErrIO):
		return IOFailure
	default:
		return Error
	}
}

// Worst returns the higher-priority of two exit codes.
func Worst(a, b int) int {
	if b > a {
		return b
	}
	return a
}
