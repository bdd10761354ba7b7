// Package eventloop implements IO concurrency on a single thread: a
// loop drains one readable stream in fixed-size chunks and hands each
// chunk to a delegate in arrival order. The stream is typically a
// pipe.Handle carrying editor traffic on stdin, but anything honoring
// the Stream contract works.
package eventloop

import (
	"errors"
	"fmt"
	"io"

	"flint/internal/pipe"
)

// readBufferSize is the fixed chunk size for stream reads.
const readBufferSize = 1024

// Stream is the readable endpoint the loop drains.
type Stream interface {
	// Read fills p with available bytes. It returns io.EOF at end of
	// stream and pipe.ErrWouldBlock when a non-blocking endpoint has
	// nothing to deliver yet.
	Read(p []byte) (int, error)
	// Wait blocks until the stream may be readable again. The loop
	// only calls it after a would-block read.
	Wait() error
}

// Delegate supplies the loop's stream and consumes what it reads.
type Delegate interface {
	// ReadableStream returns the stream to drain. The loop asks once,
	// at the start of Run.
	ReadableStream() Stream
	// Append receives one chunk of read bytes. The slice is reused
	// between reads; implementations that keep the data must copy it.
	Append(data []byte)
}

// Loop drives a Delegate until its stream ends.
type Loop struct {
	delegate Delegate
	done     bool
}

func New(delegate Delegate) *Loop {
	return &Loop{delegate: delegate}
}

// Run reads the delegate's stream until end of stream or failure. It
// returns nil after a clean end of stream; read and wait errors abort
// the loop and propagate. Chunks reach Append exactly once, in the
// order the bytes arrived, never larger than the read buffer.
func (l *Loop) Run() error {
	var buffer [readBufferSize]byte
	stream := l.delegate.ReadableStream()
	for !l.done {
		n, err := stream.Read(buffer[:])
		switch {
		case errors.Is(err, io.EOF):
			l.done = true
		case errors.Is(err, pipe.ErrWouldBlock):
			if waitErr := stream.Wait(); waitErr != nil {
				return fmt.Errorf("eventloop: wait for readable stream: %w", waitErr)
			}
		case err != nil:
			return fmt.Errorf("eventloop: read stream: %w", err)
		case n > 0:
			l.delegate.Append(buffer[:n])
		}
	}
	return nil
}
