// Package resolve provides process-level name service utilities: the
// local machine name, forward resolution of host names under an address
// family, and reverse resolution of IP addresses.
package resolve

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"dominicbreuker/gosock/pkg/socket"
)

// maxHostnameLen bounds the local machine name, matching the platform's
// maximum host name length.
const maxHostnameLen = 256

// Hostname returns the configured name of the local machine.
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("os.Hostname(): %w", err)
	}
	if len(name) > maxHostnameLen {
		name = name[:maxHostnameLen]
	}
	return name, nil
}

// HostToAddr resolves a host name to an IP address under the given
// family. Literal addresses of a matching family pass through unchanged.
// On failure no partial address is returned.
func HostToAddr(ctx context.Context, host string, family socket.Family) (string, error) {
	ips, err := lookup(ctx, host, family)
	if err != nil {
		return "", err
	}
	return ips[0].String(), nil
}

// AddrToHost resolves an IP address to its canonical host name via the
// platform's reverse lookup. The family must match the address.
func AddrToHost(ctx context.Context, addr string, family socket.Family) (string, error) {
	// Validate the literal under the requested family first so a
	// mismatch surfaces as a resolution error, not a raw lookup failure.
	if _, err := lookup(ctx, addr, family); err != nil {
		return "", err
	}

	names, err := net.DefaultResolver.LookupAddr(ctx, addr)
	if err != nil {
		return "", fmt.Errorf("LookupAddr(%s): %w", addr, err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("LookupAddr(%s): no name found", addr)
	}

	return strings.TrimSuffix(names[0], "."), nil
}

func lookup(ctx context.Context, host string, family socket.Family) ([]net.IP, error) {
	netw := ipNetwork(family)

	ips, err := net.DefaultResolver.LookupIP(ctx, netw, host)
	if err != nil {
		return nil, fmt.Errorf("LookupIP(%s, %s): %w", netw, host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("LookupIP(%s, %s): no address found", netw, host)
	}
	return ips, nil
}

func ipNetwork(family socket.Family) string {
	switch family {
	case socket.Inet:
		return "ip4"
	case socket.Inet6:
		return "ip6"
	}
	return "ip"
}
