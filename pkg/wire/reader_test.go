package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x00, 0x01})
	assert.Equal(t, uint8(0x01), r.ReadU8())
	assert.Equal(t, uint16(0x0203), r.ReadU16())
	assert.Equal(t, uint8(0x04), r.ReadU8())
	assert.False(t, r.ReadBool())
	assert.True(t, r.ReadBool())
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderInsufficientBytes(t *testing.T) {
	r := NewReader([]byte{0x01})
	v := r.ReadU32()
	assert.Equal(t, uint32(0), v)
	require.Error(t, r.Err())
	var insufficient *InsufficientBytesError
	require.ErrorAs(t, r.Err(), &insufficient)
	assert.Equal(t, 4, insufficient.Needed)
	assert.Equal(t, 1, insufficient.Remaining)

	// Once latched, further reads stay at zero and don't panic.
	assert.Equal(t, uint8(0), r.ReadU8())
}

func TestReaderU32MatchesU30VectorValue(t *testing.T) {
	// Same numeric value as one of the AVM2 u30 vectors (see avm2 package),
	// exercised here against the plain u32 big-endian decoder instead.
	r := NewReader([]byte{0x00, 0x00, 0x0A, 0x1F})
	assert.Equal(t, uint32(0x0A1F), r.ReadU32())
}

func TestReaderLenPrefixedBytes(t *testing.T) {
	data := []byte{0x00, 0x03, 'f', 'o', 'o'}
	r := NewReader(data)
	b := r.ReadLenPrefixedBytes(Prefix16)
	require.NoError(t, r.Err())
	assert.Equal(t, []byte("foo"), b)
}

func TestReaderString(t *testing.T) {
	data := []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}
	r := NewReader(data)
	s := r.ReadString(Prefix16)
	require.NoError(t, r.Err())
	assert.Equal(t, "hello", s)
}

func TestReaderStringInvalidUTF8(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF}
	r := NewReader(data)
	r.ReadString(Prefix16)
	require.Error(t, r.Err())
	var other *OtherError
	require.ErrorAs(t, r.Err(), &other)
}

func TestReadVector(t *testing.T) {
	data := []byte{0x00, 0x03, 0x01, 0x02, 0x03}
	r := NewReader(data)
	v := ReadVector(r, Prefix16, func(r *Reader) uint8 { return r.ReadU8() })
	require.NoError(t, r.Err())
	assert.Equal(t, []uint8{1, 2, 3}, v)
}

func TestReadOptionPresentAndAbsent(t *testing.T) {
	r1 := NewReader([]byte{0x2A})
	opt := ReadOption(r1, func(r *Reader) uint8 { return r.ReadU8() })
	require.NotNil(t, opt)
	assert.Equal(t, uint8(0x2A), *opt)

	r2 := NewReader(nil)
	opt2 := ReadOption(r2, func(r *Reader) uint8 { return r.ReadU8() })
	assert.Nil(t, opt2)
}

func TestPeekU32DoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00, 0x06, 0x2A})
	v, ok := r.PeekU32()
	require.True(t, ok)
	assert.Equal(t, uint32(6), v)
	assert.Equal(t, 0, r.Position())
}
