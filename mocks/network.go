// Package mocks provides mock implementations for testing.
package mocks

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// Network simulates a TCP network for testing without real sockets.
// Listeners and dialers communicate through in-memory pipes. Its method
// values plug directly into socket.Dependencies.
type Network struct {
	listeners map[string]*listener
	nextPort  int
	mu        sync.Mutex
}

// NewNetwork creates an empty in-memory network.
func NewNetwork() *Network {
	return &Network{
		listeners: make(map[string]*listener),
		nextPort:  40000,
	}
}

// Listen creates a listener on the given address. Port 0 picks a fake
// ephemeral port.
func (m *Network) Listen(network, addr string) (net.Listener, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("net.ResolveTCPAddr(tcp, %s): %w", addr, err)
	}
	if tcpAddr.IP == nil {
		tcpAddr.IP = net.IPv4(127, 0, 0, 1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if tcpAddr.Port == 0 {
		tcpAddr.Port = m.nextPort
		m.nextPort++
	}

	key := tcpAddr.String()
	if _, exists := m.listeners[key]; exists {
		return nil, fmt.Errorf("listen(tcp, %s): address already in use", key)
	}

	l := &listener{
		addr:    tcpAddr,
		connCh:  make(chan net.Conn, 10),
		closeCh: make(chan struct{}),
		network: m,
	}
	m.listeners[key] = l

	return l, nil
}

// Dial connects to a listener on the in-memory network.
func (m *Network) Dial(network, laddr, raddr string, timeout time.Duration) (net.Conn, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", raddr)
	if err != nil {
		return nil, fmt.Errorf("net.ResolveTCPAddr(tcp, %s): %w", raddr, err)
	}
	if tcpAddr.IP == nil || tcpAddr.IP.IsUnspecified() {
		tcpAddr.IP = net.IPv4(127, 0, 0, 1)
	}

	m.mu.Lock()
	l, exists := m.listeners[tcpAddr.String()]
	clientPort := m.nextPort
	m.nextPort++
	m.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("dial(tcp, %s): connection refused", raddr)
	}

	clientAddr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: clientPort}
	clientSide, serverSide := net.Pipe()

	client := &Conn{Conn: clientSide, Local: clientAddr, Remote: tcpAddr}
	server := &Conn{Conn: serverSide, Local: tcpAddr, Remote: clientAddr}

	select {
	case l.connCh <- server:
	case <-l.closeCh:
		clientSide.Close()
		serverSide.Close()
		return nil, fmt.Errorf("dial(tcp, %s): connection refused", raddr)
	case <-time.After(time.Second):
		clientSide.Close()
		serverSide.Close()
		return nil, fmt.Errorf("dial(tcp, %s): timeout", raddr)
	}

	return client, nil
}

func (m *Network) remove(addr string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listeners, addr)
}

type listener struct {
	addr    *net.TCPAddr
	connCh  chan net.Conn
	closeCh chan struct{}
	closed  bool
	mu      sync.Mutex
	network *Network
}

func (l *listener) Accept() (net.Conn, error) {
	select {
	case conn := <-l.connCh:
		return conn, nil
	case <-l.closeCh:
		return nil, fmt.Errorf("listener closed")
	}
}

func (l *listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	close(l.closeCh)
	l.network.remove(l.addr.String())
	return nil
}

func (l *listener) Addr() net.Addr {
	return l.addr
}
