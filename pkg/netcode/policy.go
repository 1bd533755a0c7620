package netcode

import (
	"bufio"
	"bytes"
	"io"
)

// policyRequest is the exact byte sequence a legacy client sends in lieu
// of any game packet when it needs to check cross-domain policy before
// opening the real connection.
var policyRequest = []byte("<policy-file-request/>\x00")

// policyFile is the static "allow all" cross-domain policy document.
var policyFile = []byte(`
<?xml version="1.0"?>
<!DOCTYPE cross-domain-policy SYSTEM "/xml/dtds/cross-domain-policy.dtd">
<cross-domain-policy>
    <site-control permitted-cross-domain-policies="all"/>
    <allow-access-from domain="*" to-ports="*"/>
</cross-domain-policy>
`)

// detectPolicyRequest peeks the leading bytes of r (a *bufio.Reader so
// the peek is non-destructive to later game-frame reads) and reports
// whether the connection opened with the full policy file request. The
// peek grows one byte at a time so a mismatch is detected as soon as
// any received byte diverges from the request — a peer whose first
// game frame is shorter than the 23-byte request must not be stalled
// waiting for bytes that will never come.
//
// Only ever called on accepted (server-side) connections; dialing never
// performs this exchange.
func detectPolicyRequest(r *bufio.Reader) (bool, error) {
	for n := 1; n <= len(policyRequest); n++ {
		peeked, err := r.Peek(n)
		if err != nil {
			if err == io.EOF {
				// Connection closed while the received bytes were still a
				// strict prefix of the request; not a policy request, the
				// caller hands off to the game codec which will itself
				// observe EOF on its next read.
				return false, nil
			}
			return false, err
		}
		if !bytes.Equal(peeked, policyRequest[:n]) {
			return false, nil
		}
	}
	return true, nil
}

// writePolicyFile writes the static policy document to w.
func writePolicyFile(w io.Writer) error {
	_, err := w.Write(policyFile)
	return err
}
