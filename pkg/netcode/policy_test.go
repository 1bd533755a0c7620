package netcode

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPolicyRequestFullMatch(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader(policyRequest))
	isPolicy, err := detectPolicyRequest(r)
	require.NoError(t, err)
	assert.True(t, isPolicy)
}

func TestDetectPolicyRequestNotAMatch(t *testing.T) {
	body := append([]byte{0x00, 0x00, 0x00, 0x06, 0x2A}, []byte("hello world and then some")...)
	r := bufio.NewReader(bytes.NewReader(body))
	isPolicy, err := detectPolicyRequest(r)
	require.NoError(t, err)
	assert.False(t, isPolicy)

	// The game codec must still see every byte, including the prefix.
	peeked, err := r.Peek(5)
	require.NoError(t, err)
	assert.Equal(t, body[:5], peeked)
}

func TestDetectPolicyRequestShortWriteThenGameByte(t *testing.T) {
	// 22 bytes of the request, then a byte that breaks the match.
	prefix := policyRequest[:len(policyRequest)-1]
	body := append(append([]byte{}, prefix...), 0xFF)
	r := bufio.NewReader(bytes.NewReader(body))

	isPolicy, err := detectPolicyRequest(r)
	require.NoError(t, err)
	assert.False(t, isPolicy)

	peeked, err := r.Peek(len(body))
	require.NoError(t, err)
	assert.Equal(t, body, peeked)
}

func TestDetectPolicyRequestShortGameFrame(t *testing.T) {
	// A minimal 5-byte game frame, shorter than the 23-byte request.
	// The mismatch on the first byte must be detected without waiting
	// for 23 bytes that will never arrive.
	body := []byte{0x00, 0x00, 0x00, 0x05, 0x2A}
	r := bufio.NewReader(bytes.NewReader(body))

	isPolicy, err := detectPolicyRequest(r)
	require.NoError(t, err)
	assert.False(t, isPolicy)

	peeked, err := r.Peek(len(body))
	require.NoError(t, err)
	assert.Equal(t, body, peeked)
}

func TestWritePolicyFileContainsAllowAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePolicyFile(&buf))
	assert.Contains(t, buf.String(), `<allow-access-from domain="*" to-ports="*"/>`)
}
