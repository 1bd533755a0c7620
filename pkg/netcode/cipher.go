// Package netcode implements the connection layer: the policy-file
// sideband handshake, length-prefixed frame codec, and the RC4 stream
// cipher that encrypts every frame payload.
package netcode

import "fmt"

// RC4 is the stateful 8-bit-index stream cipher keying one direction of
// a connection. A cipher instance is owned exclusively by one
// connection and its keystream is continuous across frame boundaries —
// it is never reset between frames.
type RC4 struct {
	s    [256]byte
	i, j uint8
}

// NewRC4 runs the key schedule over key (1-256 bytes) and returns a
// cipher ready to generate keystream.
func NewRC4(key []byte) (*RC4, error) {
	if len(key) == 0 || len(key) > 256 {
		return nil, fmt.Errorf("rc4: key length %d out of range 1..256", len(key))
	}
	c := &RC4{}
	for i := 0; i < 256; i++ {
		c.s[i] = byte(i)
	}
	var j uint8
	for i := 0; i < 256; i++ {
		j = j + c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}
	return c, nil
}

// nextByte produces the next keystream byte.
func (c *RC4) nextByte() byte {
	c.i++
	c.j += c.s[c.i]
	c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
	return c.s[(c.s[c.i]+c.s[c.j])]
}

// XORKeyStream XORs the keystream into dst, continuing from wherever
// the cipher's internal state left off. dst and src may overlap
// exactly (in-place encryption is the common case here).
func (c *RC4) XORKeyStream(dst, src []byte) {
	for i, b := range src {
		dst[i] = b ^ c.nextByte()
	}
}
