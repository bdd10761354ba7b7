//go:build !unix

package pipe

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Handle is a readable pipe endpoint. On this platform descriptors
// cannot be switched into non-blocking mode, so every read waits for
// data and Wait has nothing to do.
type Handle struct {
	f *os.File
}

// FromFile wraps f. The handle shares the underlying file with f.
func FromFile(f *os.File) *Handle {
	return &Handle{f: f}
}

// SetNonBlocking reports failure when non-blocking mode is requested;
// this platform only supports blocking reads.
func (h *Handle) SetNonBlocking(enabled bool) error {
	if enabled {
		return errors.New("pipe: non-blocking reads are not supported on this platform")
	}
	return nil
}

// NonBlocking always reports false.
func (h *Handle) NonBlocking() bool {
	return false
}

// Read waits for data and fills p. It returns io.EOF at end of stream.
func (h *Handle) Read(p []byte) (int, error) {
	n, err := h.f.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("pipe: read: %w", err)
	}
	return n, nil
}

// Wait is a no-op: blocking reads never need a readiness wait.
func (h *Handle) Wait() error {
	return nil
}

// Close releases the underlying file.
func (h *Handle) Close() error {
	return h.f.Close()
}
