package netcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encryptAll(t *testing.T, key, plaintext []byte) []byte {
	t.Helper()
	c, err := NewRC4(key)
	require.NoError(t, err)
	out := make([]byte, len(plaintext))
	c.XORKeyStream(out, plaintext)
	return out
}

func TestRC4PublishedVectors(t *testing.T) {
	t.Run("Key", func(t *testing.T) {
		got := encryptAll(t, []byte("Key"), []byte("Plaintext"))
		assert.Equal(t, []byte{0xBB, 0xF3, 0x16, 0xE8, 0xD9, 0x40, 0xAF, 0x0A, 0xD3}, got)
	})
	t.Run("Wiki", func(t *testing.T) {
		got := encryptAll(t, []byte("Wiki"), []byte("pedia"))
		assert.Equal(t, []byte{0x10, 0x21, 0xBF, 0x04, 0x20}, got)
	})
	t.Run("Secret", func(t *testing.T) {
		got := encryptAll(t, []byte("Secret"), []byte("Attack at dawn"))
		assert.Equal(t, []byte{
			0x45, 0xA0, 0x1F, 0x64, 0x5F, 0xC3, 0x5B, 0x38, 0x35, 0x52, 0x54, 0x4B, 0x9B, 0xF5,
		}, got)
	})
}

func TestRC4DecryptRecoversPlaintext(t *testing.T) {
	key := []byte("some-session-key")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc, err := NewRC4(key)
	require.NoError(t, err)
	ciphertext := make([]byte, len(plaintext))
	enc.XORKeyStream(ciphertext, plaintext)

	dec, err := NewRC4(key)
	require.NoError(t, err)
	recovered := make([]byte, len(ciphertext))
	dec.XORKeyStream(recovered, ciphertext)

	assert.Equal(t, plaintext, recovered)
}

func TestRC4IsStatefulAcrossCalls(t *testing.T) {
	key := []byte("stream")
	plaintext := []byte("0123456789")

	whole, err := NewRC4(key)
	require.NoError(t, err)
	wholeOut := make([]byte, len(plaintext))
	whole.XORKeyStream(wholeOut, plaintext)

	split, err := NewRC4(key)
	require.NoError(t, err)
	splitOut := make([]byte, len(plaintext))
	split.XORKeyStream(splitOut[:3], plaintext[:3])
	split.XORKeyStream(splitOut[3:], plaintext[3:])

	assert.Equal(t, wholeOut, splitOut)
}

func TestRC4RejectsInvalidKeyLength(t *testing.T) {
	_, err := NewRC4(nil)
	require.Error(t, err)

	_, err = NewRC4(make([]byte, 257))
	require.Error(t, err)
}
