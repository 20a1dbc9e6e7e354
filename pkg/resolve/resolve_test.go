package resolve

import (
	"context"
	"testing"

	"dominicbreuker/gosock/pkg/socket"
)

func TestHostname(t *testing.T) {
	t.Parallel()

	name, err := Hostname()
	if err != nil {
		t.Fatalf("Hostname() error: %s", err)
	}
	if name == "" {
		t.Errorf("Hostname() returned empty name")
	}
}

func TestHostToAddrLiteral(t *testing.T) {
	t.Parallel()

	got, err := HostToAddr(context.Background(), "127.0.0.1", socket.Inet)
	if err != nil {
		t.Fatalf("HostToAddr(127.0.0.1) error: %s", err)
	}
	if got != "127.0.0.1" {
		t.Errorf("HostToAddr(127.0.0.1) = %q, want 127.0.0.1", got)
	}
}

func TestHostToAddrLocalhost(t *testing.T) {
	t.Parallel()

	got, err := HostToAddr(context.Background(), "localhost", socket.Unspec)
	if err != nil {
		t.Fatalf("HostToAddr(localhost) error: %s", err)
	}
	if got == "" {
		t.Errorf("HostToAddr(localhost) returned empty address")
	}
}

func TestHostToAddrUnknown(t *testing.T) {
	t.Parallel()

	// RFC 2606 reserves .invalid for names guaranteed not to resolve.
	if _, err := HostToAddr(context.Background(), "nonexistent.invalid.", socket.Unspec); err == nil {
		t.Errorf("HostToAddr() on reserved invalid name expected error")
	}
}

func TestAddrToHostRejectsNonLiteral(t *testing.T) {
	t.Parallel()

	if _, err := AddrToHost(context.Background(), "not-an-address.invalid.", socket.Inet); err == nil {
		t.Errorf("AddrToHost() on non-literal input expected error")
	}
}
