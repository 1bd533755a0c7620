package wire

import (
	"encoding/binary"
	"math"
)

// Writer is a growable big-endian sink. Encoders never fail on length —
// they grow the sink — except where a declared prefix width cannot hold
// the encoded length, which is reported via Err().
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns an empty Writer, optionally pre-sized via capacity
// hint.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Fail latches an encode error from outside the package.
func (w *Writer) Fail(err error) {
	w.fail(err)
}

func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 0x01)
	} else {
		w.buf = append(w.buf, 0x00)
	}
}

func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteI8(v int8) {
	w.WriteU8(uint8(v))
}

func (w *Writer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

func (w *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

func (w *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

// WriteU128 writes a 128-bit big-endian unsigned integer given as
// (high, low).
func (w *Writer) WriteU128(hi, lo uint64) {
	w.WriteU64(hi)
	w.WriteU64(lo)
}

func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

func (w *Writer) writePrefixLen(width PrefixWidth, n int) {
	switch width {
	case Prefix8:
		if n > 0xFF {
			w.fail(&InvalidDataError{Message: "cannot cast length from usize"})
			return
		}
		w.WriteU8(uint8(n))
	case Prefix32:
		w.WriteU32(uint32(n))
	default:
		if n > 0xFFFF {
			w.fail(&InvalidDataError{Message: "cannot cast length from usize"})
			return
		}
		w.WriteU16(uint16(n))
	}
}

// WriteLenPrefixedBytes encodes a length-prefixed raw byte sequence.
func (w *Writer) WriteLenPrefixedBytes(width PrefixWidth, b []byte) {
	w.writePrefixLen(width, len(b))
	if w.err != nil {
		return
	}
	w.WriteBytes(b)
}

// WriteString encodes a length-prefixed UTF-8 string. Go strings are
// always valid UTF-8 by construction, so no validation error is possible
// here (unlike ReadString).
func (w *Writer) WriteString(width PrefixWidth, s string) {
	w.WriteLenPrefixedBytes(width, []byte(s))
}

// WriteVector encodes a length-prefixed sequence, one element at a time
// via encode.
func WriteVector[T any](w *Writer, width PrefixWidth, items []T, encode func(*Writer, T)) {
	w.writePrefixLen(width, len(items))
	if w.err != nil {
		return
	}
	for _, item := range items {
		encode(w, item)
		if w.err != nil {
			return
		}
	}
}

// WriteOption encodes a trailing Option<T>: nil writes nothing, non-nil
// writes the value's encoding. Must only be used for the last field of a
// packet.
func WriteOption[T any](w *Writer, v *T, encode func(*Writer, T)) {
	if v == nil {
		return
	}
	encode(w, *v)
}
