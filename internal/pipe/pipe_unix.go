//go:build unix

package pipe

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Handle is a readable pipe endpoint identified by its descriptor.
type Handle struct {
	fd          int
	nonBlocking bool
}

// New wraps an already-open file descriptor. The handle takes no
// ownership; use Close to release the descriptor explicitly.
func New(fd int) *Handle {
	return &Handle{fd: fd}
}

// FromFile wraps f's descriptor. The handle shares the descriptor with
// f, so closing either side invalidates the other. The caller must
// keep f alive for as long as the handle is used.
func FromFile(f *os.File) *Handle {
	return New(int(f.Fd()))
}

// Pair creates a connected pipe and returns its read end as a Handle
// plus the write end as an os.File.
func Pair() (*Handle, *os.File, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return nil, nil, fmt.Errorf("pipe: create: %w", err)
	}
	return New(fds[0]), os.NewFile(uintptr(fds[1]), "|1"), nil
}

// SetNonBlocking switches the descriptor into or out of non-blocking
// mode.
func (h *Handle) SetNonBlocking(enabled bool) error {
	if err := unix.SetNonblock(h.fd, enabled); err != nil {
		return fmt.Errorf("pipe: set non-blocking: %w", err)
	}
	h.nonBlocking = enabled
	return nil
}

// NonBlocking reports whether reads return ErrWouldBlock instead of
// waiting for data.
func (h *Handle) NonBlocking() bool {
	return h.nonBlocking
}

// Read fills p with whatever bytes are available. It returns io.EOF at
// end of stream and ErrWouldBlock when a non-blocking descriptor has
// nothing to deliver yet. Interrupted reads are retried.
func (h *Handle) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(h.fd, p)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			return 0, ErrWouldBlock
		case err != nil:
			return 0, fmt.Errorf("pipe: read: %w", err)
		case n == 0:
			return 0, io.EOF
		default:
			return n, nil
		}
	}
}

// Wait blocks until the descriptor is readable. Hang-ups and error
// conditions also count as readable; the next Read surfaces them as
// io.EOF or a read error.
func (h *Handle) Wait() error {
	pfds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(pfds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("pipe: poll: %w", err)
		}
		if n == 0 {
			continue
		}
		if pfds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0 {
			return nil
		}
	}
}

// Close releases the descriptor.
func (h *Handle) Close() error {
	if err := unix.Close(h.fd); err != nil {
		return fmt.Errorf("pipe: close: %w", err)
	}
	return nil
}
