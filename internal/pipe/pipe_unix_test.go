//go:build unix

package pipe

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestHandle_ReadToEOF(t *testing.T) {
	r, w, err := Pair()
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	if _, err := w.WriteString("hello"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var buf [16]byte
	n, err := r.Read(buf[:])
	if err != nil || string(buf[:n]) != "hello" {
		t.Fatalf("Read() = %q, %v; want %q, nil", buf[:n], err, "hello")
	}
	if _, err := r.Read(buf[:]); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after writer close = %v, want io.EOF", err)
	}
}

func TestHandle_NonBlocking(t *testing.T) {
	r, w, err := Pair()
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	if err := r.SetNonBlocking(true); err != nil {
		t.Fatalf("SetNonBlocking() error = %v", err)
	}
	if !r.NonBlocking() {
		t.Fatal("NonBlocking() = false after enabling")
	}

	var buf [16]byte
	if _, err := r.Read(buf[:]); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("Read() on empty pipe = %v, want ErrWouldBlock", err)
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.WriteString("x")
		_ = w.Close()
	}()

	if err := r.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	n, err := r.Read(buf[:])
	if err != nil || string(buf[:n]) != "x" {
		t.Errorf("Read() after Wait = %q, %v; want %q, nil", buf[:n], err, "x")
	}
}

func TestHandle_WaitSeesHangup(t *testing.T) {
	r, w, err := Pair()
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
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
		time.Sleep(10 * time.Millisecond)
		_ = w.Close()
	}()

	if err := r.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	var buf [16]byte
	if _, err := r.Read(buf[:]); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after hangup = %v, want io.EOF", err)
	}
}
