// Package format provides string formatting helpers for network addresses.
package format

import (
	"fmt"
	"strings"
)

// Addr formats a host and port as a dialable address string. IPv6 hosts
// are bracketed.
func Addr(host string, port int) string {
	if strings.ContainsAny(host, ":") { // IPv6
		return fmt.Sprintf("[%s]:%d", host, port)
	}
	return fmt.Sprintf("%s:%d", host, port)
}
