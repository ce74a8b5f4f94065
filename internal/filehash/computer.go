// Package filehash computes digests over file contents and renders them as
// lowercase hexadecimal.
//
// Files are read in bounded chunks and every chunk is fed to the accumulator
// with exactly the number of bytes read, so the digest always matches a
// whole-file digest regardless of buffer size.
package filehash

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultBufferSize is the chunk size used by the command-line tool.
const DefaultBufferSize = 4096

// Request describes a single digest computation.
type Request struct {
	Path       string
	Algorithm  string // empty selects DefaultAlgorithm
	BufferSize int
}

// Computer hashes files found on Fs.
type Computer struct {
	Fs afero.Fs
}

// NewComputer returns a Computer reading from fs. A nil fs means the OS
// filesystem.
func NewComputer(fs afero.Fs) *Computer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Computer{Fs: fs}
}

// Compute hashes the file at path on the OS filesystem.
func Compute(path, algorithm string, bufferSize int) ([]byte, error) {
	return NewComputer(nil).Compute(Request{Path: path, Algorithm: algorithm, BufferSize: bufferSize})
}

// Compute returns the digest of the full contents of req.Path.
//
// Arguments and the algorithm are validated before the file is opened. The
// file length is taken from the open handle; each read requests
// min(buffer size, bytes remaining), so the final chunk holds exactly the
// trailing bytes. A file that yields fewer bytes than its reported length
// is an ErrIO failure.
func (c *Computer) Compute(req Request) ([]byte, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	if req.BufferSize < 1 {
		return nil, fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidArgument, req.BufferSize)
	}

	h, _, err := Lookup(req.Algorithm)
	if err != nil {
		return nil, err
	}

	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	f, err := fs.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, req.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, req.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIO, req.Path)
	}

	remaining := info.Size()
	if remaining == 0 {
		return h.Sum(nil), nil
	}

	size := int64(req.BufferSize)
	if remaining < size {
		size = remaining
	}
	buf := make([]byte, size)

	var offset int64
	for remaining > 0 {
		chunk := buf
		if remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}

		n, err := io.ReadFull(f, chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s at offset %d: %w", ErrIO, req.Path, offset+int64(n), err)
		}
		// hash.Hash.Write never returns an error.
		h.Write(chunk[:n])

		offset += int64(n)
		remaining -= int64(n)
	}

	return h.Sum(nil), nil
}

// ComputeHex is Compute followed by ToHex.
func (c *Computer) ComputeHex(req Request) (string, error) {
	sum, err := c.Compute(req)
	if err != nil {
		return "", err
	}
	return ToHex(sum)
}
