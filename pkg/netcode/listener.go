package netcode

import (
	"bufio"
	"net"

	"github.com/oryxlabs/realmcore/internal/logger"
	"github.com/oryxlabs/realmcore/pkg/metrics"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

// Listener accepts game connections on a TCP address, transparently
// handling the Flash policy-file sideband handshake: a peer that only
// asked for the cross-domain policy is served and closed without ever
// being surfaced to Accept's caller.
type Listener struct {
	tcp      net.Listener
	mappings *protocol.Mappings
}

// Listen binds addr and returns a Listener serving connections keyed by
// mappings.
func Listen(addr string, mappings *protocol.Mappings) (*Listener, error) {
	tcp, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Listener{tcp: tcp, mappings: mappings}, nil
}

// Addr returns the listener's bound address.
func (l *Listener) Addr() net.Addr {
	return l.tcp.Addr()
}

// Close stops accepting new connections.
func (l *Listener) Close() error {
	return l.tcp.Close()
}

// Accept blocks until a game connection is available. Peers that only
// perform the policy-file handshake are handled internally and never
// returned; Accept keeps looping until a real game connection arrives
// or the listener is closed.
func (l *Listener) Accept() (*Conn, error) {
	for {
		tcp, err := l.tcp.Accept()
		if err != nil {
			return nil, err
		}

		disableNagle(tcp)

		reader := bufio.NewReader(tcp)
		isPolicy, err := detectPolicyRequest(reader)
		if err != nil {
			logger.Debug("policy detection failed", "address", tcp.RemoteAddr(), "error", err)
			tcp.Close()
			continue
		}
		if isPolicy {
			metrics.PolicyRequestDetected()
			if err := writePolicyFile(tcp); err != nil {
				logger.Debug("failed writing policy file", "address", tcp.RemoteAddr(), "error", err)
			}
			tcp.Close()
			continue
		}

		conn, err := newConn(&bufferedConn{Conn: tcp, reader: reader}, l.mappings, true)
		if err != nil {
			tcp.Close()
			return nil, err
		}
		metrics.ConnectionAccepted("server")
		logger.Debug("connection accepted", "connection_id", conn.ID, "address", conn.RemoteAddr())
		return conn, nil
	}
}

// bufferedConn presents a net.Conn whose Read is served from a
// bufio.Reader that already holds bytes peeked during policy detection,
// so those bytes are not lost to the game codec.
type bufferedConn struct {
	net.Conn
	reader *bufio.Reader
}

func (b *bufferedConn) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}
