package netcode

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oryxlabs/realmcore/pkg/protocol"
)

func TestReadFrameDecodesSingleByteS5(t *testing.T) {
	cipher, err := NewRC4([]byte("key-for-receive-direction"))
	require.NoError(t, err)

	var keystreamFirstByte [1]byte
	peekCipher, err := NewRC4([]byte("key-for-receive-direction"))
	require.NoError(t, err)
	peekCipher.XORKeyStream(keystreamFirstByte[:], []byte{0x00})
	yy := keystreamFirstByte[0]

	xx := byte(0x37)
	encryptedPayload := xx ^ yy

	raw := []byte{0x00, 0x00, 0x00, 0x06, 0x2A, encryptedPayload}
	r := bufio.NewReader(bytes.NewReader(raw))

	packet, err := readFrame(r, cipher)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), packet.WireID)
	assert.Equal(t, []byte{xx}, packet.Body)
	assert.Equal(t, 0, r.Buffered())
}

func TestReadFrameRejectsShortTotalLength(t *testing.T) {
	cipher, err := NewRC4([]byte("k"))
	require.NoError(t, err)

	raw := []byte{0x00, 0x00, 0x00, 0x03, 0x2A}
	r := bufio.NewReader(bytes.NewReader(raw))

	_, err = readFrame(r, cipher)
	require.Error(t, err)
	var sizeErr *InvalidFrameSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, uint32(3), sizeErr.TotalLength)
}

func TestWriteThenReadFrameRoundTrip(t *testing.T) {
	sendCipher, err := NewRC4([]byte("send-side-key"))
	require.NoError(t, err)
	recvCipher, err := NewRC4([]byte("send-side-key"))
	require.NoError(t, err)

	var buf bytes.Buffer
	original := protocol.RawPacket{WireID: 0x05, Body: []byte{1, 2, 3, 4, 5}}
	require.NoError(t, writeFrame(&buf, sendCipher, original))

	r := bufio.NewReader(&buf)
	decoded, err := readFrame(r, recvCipher)
	require.NoError(t, err)
	assert.Equal(t, original.WireID, decoded.WireID)
	assert.Equal(t, original.Body, decoded.Body)
}

func TestFrameCipherIsContinuousAcrossFrames(t *testing.T) {
	sendCipher, err := NewRC4([]byte("continuous-key"))
	require.NoError(t, err)
	recvCipher, err := NewRC4([]byte("continuous-key"))
	require.NoError(t, err)

	var buf bytes.Buffer
	first := protocol.RawPacket{WireID: 0x01, Body: []byte{0xAA, 0xBB}}
	second := protocol.RawPacket{WireID: 0x02, Body: []byte{0xCC, 0xDD, 0xEE}}
	require.NoError(t, writeFrame(&buf, sendCipher, first))
	require.NoError(t, writeFrame(&buf, sendCipher, second))

	r := bufio.NewReader(&buf)
	decodedFirst, err := readFrame(r, recvCipher)
	require.NoError(t, err)
	assert.Equal(t, first.Body, decodedFirst.Body)

	decodedSecond, err := readFrame(r, recvCipher)
	require.NoError(t, err)
	assert.Equal(t, second.Body, decodedSecond.Body)
}
