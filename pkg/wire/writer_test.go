package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTripPrimitives(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0x01)
	w.WriteU16(0x0203)
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteF32(1.5)
	w.WriteF64(2.5)
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	assert.Equal(t, uint8(0x01), r.ReadU8())
	assert.Equal(t, uint16(0x0203), r.ReadU16())
	assert.True(t, r.ReadBool())
	assert.False(t, r.ReadBool())
	assert.Equal(t, float32(1.5), r.ReadF32())
	assert.Equal(t, float64(2.5), r.ReadF64())
	require.NoError(t, r.Err())
}

func TestWriteVectorOverflow8Bit(t *testing.T) {
	// S3: a 300-element sequence with an 8-bit length prefix must fail.
	big := make([]uint8, 300)
	w := NewWriter(0)
	WriteVector(w, Prefix8, big, func(w *Writer, v uint8) { w.WriteU8(v) })
	require.Error(t, w.Err())
	var invalid *InvalidDataError
	require.ErrorAs(t, w.Err(), &invalid)
}

func TestWriteVectorOverflow16BitSucceeds(t *testing.T) {
	big := make([]uint8, 300)
	for i := range big {
		big[i] = uint8(i)
	}
	w := NewWriter(0)
	WriteVector(w, Prefix16, big, func(w *Writer, v uint8) { w.WriteU8(v) })
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	got := ReadVector(r, Prefix16, func(r *Reader) uint8 { return r.ReadU8() })
	require.NoError(t, r.Err())
	assert.Equal(t, big, got)
}

func TestWriteVectorRoundTrip(t *testing.T) {
	w := NewWriter(0)
	items := []uint16{1, 2, 3, 4}
	WriteVector(w, Prefix16, items, func(w *Writer, v uint16) { w.WriteU16(v) })
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	got := ReadVector(r, Prefix16, func(r *Reader) uint16 { return r.ReadU16() })
	require.NoError(t, r.Err())
	assert.Equal(t, items, got)
}

func TestWriteOptionTrailing(t *testing.T) {
	w := NewWriter(0)
	v := uint8(9)
	WriteOption(w, &v, func(w *Writer, x uint8) { w.WriteU8(x) })
	assert.Equal(t, []byte{9}, w.Bytes())

	w2 := NewWriter(0)
	WriteOption[uint8](w2, nil, func(w *Writer, x uint8) { w.WriteU8(x) })
	assert.Empty(t, w2.Bytes())
}

func TestWriteStringRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteString(Prefix16, "hello world")
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	assert.Equal(t, "hello world", r.ReadString(Prefix16))
	require.NoError(t, r.Err())
}

func TestU128RoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteU128(0x0102030405060708, 0x090A0B0C0D0E0F10)
	r := NewReader(w.Bytes())
	hi, lo := r.ReadU128()
	assert.Equal(t, uint64(0x0102030405060708), hi)
	assert.Equal(t, uint64(0x090A0B0C0D0E0F10), lo)
}
