// Package pipe wraps a readable pipe endpoint behind a small handle
// with optional non-blocking reads. On unix platforms the handle talks
// to the descriptor directly and can poll for readiness; elsewhere
// reads always block and readiness waits are a no-op.
package pipe

import "errors"

// ErrWouldBlock is returned by Read on a non-blocking handle when no
// data is available yet. Callers wait via Wait and read again.
var ErrWouldBlock = errors.New("pipe: read would block")
