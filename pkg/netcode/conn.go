package netcode

import (
	"bufio"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/oryxlabs/realmcore/pkg/metrics"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

const keyHalfLen = 13

// Conn is one framed, encrypted game connection. RawPacket reads and
// writes are safe to call from one reader goroutine and one writer
// goroutine concurrently; each direction owns its own cipher instance
// and neither is shared with the other.
type Conn struct {
	// ID identifies this connection for log correlation; it has no
	// meaning on the wire.
	ID uuid.UUID

	transport    net.Conn
	reader       *bufio.Reader
	mappings     *protocol.Mappings
	isServerSide bool

	recv *RC4
	send *RC4

	writeMu sync.Mutex
}

// newConn assigns cipher halves per the role-based convention: on a
// server-side (accepted) connection the first half of the 26-byte key
// keys receive and the second half keys send; on a client-side (dialed)
// connection the assignment is reversed. There is no handshake that
// negotiates this — getting it backwards produces garbled but
// undetected ciphertext until the first framing error.
func newConn(transport net.Conn, mappings *protocol.Mappings, isServerSide bool) (*Conn, error) {
	key := mappings.Key()
	firstHalf := key[:keyHalfLen]
	secondHalf := key[keyHalfLen:]

	recvKey, sendKey := secondHalf, firstHalf
	if isServerSide {
		recvKey, sendKey = firstHalf, secondHalf
	}

	recv, err := NewRC4(recvKey)
	if err != nil {
		return nil, fmt.Errorf("receive cipher: %w", err)
	}
	send, err := NewRC4(sendKey)
	if err != nil {
		return nil, fmt.Errorf("send cipher: %w", err)
	}

	return &Conn{
		ID:           uuid.New(),
		transport:    transport,
		reader:       bufio.NewReader(transport),
		mappings:     mappings,
		isServerSide: isServerSide,
		recv:         recv,
		send:         send,
	}, nil
}

// RemoteAddr returns the underlying transport's remote address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.transport.RemoteAddr()
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	metrics.ConnectionClosed(c.role(), "closed")
	return c.transport.Close()
}

// role reports "server" for an accepted connection and "client" for a
// dialed one.
func (c *Conn) role() string {
	if c.isServerSide {
		return "server"
	}
	return "client"
}

// ReadRawPacket blocks for one full frame and returns it decrypted but
// undecoded.
func (c *Conn) ReadRawPacket() (protocol.RawPacket, error) {
	return readFrame(c.reader, c.recv)
}

// WriteRawPacket encrypts and writes one frame. Safe for concurrent use
// with other writers; writes are serialized.
func (c *Conn) WriteRawPacket(p protocol.RawPacket) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return writeFrame(c.transport, c.send, p)
}

// ReadPacket reads one frame and resolves it to a typed Packet via this
// connection's Mappings.
func (c *Conn) ReadPacket() (protocol.Packet, error) {
	raw, err := c.ReadRawPacket()
	if err != nil {
		return protocol.Packet{}, err
	}
	return protocol.ToPacket(raw, c.mappings)
}

// WritePacket encodes and writes a typed Packet.
func (c *Conn) WritePacket(p protocol.Packet) error {
	raw, err := protocol.ToRawPacket(p, c.mappings)
	if err != nil {
		return err
	}
	return c.WriteRawPacket(raw)
}

// disableNagle turns off Nagle's algorithm so frames are flushed to the
// wire immediately rather than batched. Non-TCP transports (e.g. in
// tests using net.Pipe) silently skip this.
func disableNagle(c net.Conn) {
	if tcp, ok := c.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}
}

// Dial opens a client-side connection to addr. The policy-file sideband
// exchange never occurs on a dialed connection.
func Dial(addr string, mappings *protocol.Mappings) (*Conn, error) {
	transport, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	disableNagle(transport)
	conn, err := newConn(transport, mappings, false)
	if err != nil {
		transport.Close()
		return nil, err
	}
	metrics.ConnectionAccepted("client")
	return conn, nil
}
