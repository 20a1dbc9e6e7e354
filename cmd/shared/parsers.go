package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dominicbreuker/gosock/pkg/socket"
)

// ParseEndpoint parses an endpoint string in the format
// "scheme://host:port" where scheme is one of tcp, tcp4, tcp6, udp,
// udp4 or udp6. The bare schemes leave the address family unspecified;
// the 4/6 variants pin it. The host can be empty or "*" to bind to all
// interfaces, and IPv6 hosts may be bracketed. Returns the protocol,
// family, host, port, and any parsing error.
func ParseEndpoint(s string) (proto socket.Protocol, family socket.Family, host string, port int, err error) {
	re := regexp.MustCompile(`^(tcp|tcp4|tcp6|udp|udp4|udp6)://(\[[^\]]*\]|[^:]*):(\d+)$`)
	matches := re.FindStringSubmatch(s)

	if len(matches) != 4 {
		err = parsingError(s)
		return
	}

	switch matches[1] {
	case "tcp":
		proto, family = socket.TCP, socket.Unspec
	case "tcp4":
		proto, family = socket.TCP, socket.Inet
	case "tcp6":
		proto, family = socket.TCP, socket.Inet6
	case "udp":
		proto, family = socket.UDP, socket.Unspec
	case "udp4":
		proto, family = socket.UDP, socket.Inet
	case "udp6":
		proto, family = socket.UDP, socket.Inet6
	default:
		err = parsingError(s)
		return
	}

	host = matches[2]
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	if host == "*" { // also counts as all interfaces
		host = ""
	}

	port, err = strconv.Atoi(matches[3])
	if err != nil || port < 0 || port > 65535 {
		err = parsingError(s)
		return
	}

	return
}

func parsingError(s string) error {
	return fmt.Errorf("parsing %s: format should be 'scheme://host:port', where scheme = tcp|tcp4|tcp6|udp|udp4|udp6", s)
}
