package mocks

import (
	"testing"
	"time"
)

func TestNetworkDialAndListen(t *testing.T) {
	t.Parallel()

	n := NewNetwork()

	ln, err := n.Listen("tcp", "127.0.0.1:12345")
	if err != nil {
		t.Fatalf("Listen() error: %s", err)
	}
	defer ln.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)

		conn, err := ln.Accept()
		if err != nil {
			t.Errorf("Accept() error: %s", err)
			return
		}
		defer conn.Close()

		buf := make([]byte, 5)
		if _, err := conn.Read(buf); err != nil {
			t.Errorf("Read() error: %s", err)
			return
		}
		if string(buf) != "hello" {
			t.Errorf("Read() = %q, want %q", buf, "hello")
		}
	}()

	conn, err := n.Dial("tcp", "", "127.0.0.1:12345", time.Second)
	if err != nil {
		t.Fatalf("Dial() error: %s", err)
	}
	defer conn.Close()

	if conn.RemoteAddr().String() != "127.0.0.1:12345" {
		t.Errorf("RemoteAddr() = %s, want 127.0.0.1:12345", conn.RemoteAddr())
	}

	if _, err := conn.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() error: %s", err)
	}

	<-done
}

func TestNetworkDialRefused(t *testing.T) {
	t.Parallel()

	n := NewNetwork()
	if _, err := n.Dial("tcp", "", "127.0.0.1:1", time.Second); err == nil {
		t.Errorf("Dial() to unused port expected error, got nil")
	}
}

func TestNetworkAddressInUse(t *testing.T) {
	t.Parallel()

	n := NewNetwork()

	ln, err := n.Listen("tcp", "127.0.0.1:2000")
	if err != nil {
		t.Fatalf("Listen() error: %s", err)
	}
	defer ln.Close()

	if _, err := n.Listen("tcp", "127.0.0.1:2000"); err == nil {
		t.Errorf("second Listen() on same address expected error, got nil")
	}

	// the address frees up after close
	ln.Close()
	ln2, err := n.Listen("tcp", "127.0.0.1:2000")
	if err != nil {
		t.Fatalf("Listen() after Close() error: %s", err)
	}
	ln2.Close()
}
