package avm2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderU30(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"single byte", []byte{0x01}, 1},
		{"two bytes a", []byte{0x9f, 0x14}, 2591},
		{"two bytes b", []byte{0x81, 0x4c}, 9729},
		{"two bytes c", []byte{0xf4, 0x05}, 756},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReader(c.in)
			got, err := r.U30()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, 0, r.Remaining(), "no bytes should remain")
		})
	}
}

func TestReaderU30InsufficientBytes(t *testing.T) {
	r := NewReader([]byte{0x80})
	_, err := r.U30()
	require.Error(t, err)
	var insufficient *InsufficientBytesError
	assert.ErrorAs(t, err, &insufficient)
}

func TestReaderU16LittleEndian(t *testing.T) {
	r := NewReader([]byte{0x34, 0x12})
	v, err := r.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestReaderString(t *testing.T) {
	r := NewReader([]byte{0x05, 'h', 'e', 'l', 'l', 'o'})
	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}
