package filehash

import "errors"

// Error categories. Every error returned by this package wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument reports an empty path, a non-positive buffer size,
	// a nil byte slice passed to ToHex, or a bad registry entry.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedAlgorithm reports an algorithm name with no registered
	// accumulator.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrIO reports a file that could not be opened, inspected, or fully
	// read. The underlying filesystem error is wrapped alongside it.
	ErrIO = errors.New("i/o failure")
)
