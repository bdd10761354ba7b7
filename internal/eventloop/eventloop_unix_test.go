//go:build unix

package eventloop

import (
	"strings"
	"testing"
	"time"

	"flint/internal/pipe"
)

type pipeDelegate struct {
	stream Stream
	data   strings.Builder
}

func (d *pipeDelegate) ReadableStream() Stream { return d.stream }

func (d *pipeDelegate) Append(data []byte) {
	d.data.Write(data)
}

// Over a real pipe the kernel decides chunk boundaries, so only the
// reassembled byte sequence is asserted here; boundary-exact cases
// live in the scripted-stream tests.
func TestLoop_RealPipe(t *testing.T) {
	r, w, err := pipe.Pair()
	if err != nil {
		t.Fatalf("pipe.Pair() error = %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()
	if err := r.SetNonBlocking(true); err != nil {
		t.Fatalf("SetNonBlocking() error = %v", err)
	}

	go func() {
		_, _ = w.WriteString("first ")
		time.Sleep(5 * time.Millisecond)
		_, _ = w.WriteString("second ")
		time.Sleep(5 * time.Millisecond)
		_, _ = w.WriteString("third")
		_ = w.Close()
	}()

	delegate := &pipeDelegate{stream: r}
	if err := New(delegate).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := delegate.data.String(), "first second third"; got != want {
		t.Errorf("received %q, want %q", got, want)
	}
}
