package netcode

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oryxlabs/realmcore/pkg/bufpool"
	"github.com/oryxlabs/realmcore/pkg/metrics"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

// frameHeaderLen is the number of clear-text bytes at the start of
// every frame: the 4-byte total length plus the 1-byte wire ID.
const frameHeaderLen = 5

// InvalidFrameSizeError reports a declared total_length too small to
// hold even the frame header. Fatal for the connection.
type InvalidFrameSizeError struct {
	TotalLength uint32
}

func (e *InvalidFrameSizeError) Error() string {
	return fmt.Sprintf("invalid frame size: %d", e.TotalLength)
}

// readFrame blocks until one full frame has arrived on r, decrypts its
// payload in place with cipher (continuous across calls), and returns
// it as a RawPacket. io.EOF is returned unwrapped so callers can detect
// ordinary disconnects.
func readFrame(r *bufio.Reader, cipher *RC4) (protocol.RawPacket, error) {
	header, err := r.Peek(4)
	if err != nil {
		return protocol.RawPacket{}, err
	}
	totalLength := binary.BigEndian.Uint32(header)
	if totalLength < frameHeaderLen {
		return protocol.RawPacket{}, &InvalidFrameSizeError{TotalLength: totalLength}
	}

	frame := make([]byte, totalLength)
	if _, err := io.ReadFull(r, frame); err != nil {
		return protocol.RawPacket{}, err
	}

	wireID := frame[4]
	payload := frame[frameHeaderLen:]
	cipher.XORKeyStream(payload, payload)

	metrics.FrameObserved("read", len(payload))
	metrics.CipherBytesProcessed("recv", len(payload))

	return protocol.RawPacket{WireID: wireID, Body: payload}, nil
}

// writeFrame encrypts packet's body with cipher (continuous across
// calls) and writes the complete frame to w. The frame buffer is
// borrowed from bufpool and returned once the write completes; it
// never escapes this call.
func writeFrame(w io.Writer, cipher *RC4, packet protocol.RawPacket) error {
	total := frameHeaderLen + len(packet.Body)
	frame := bufpool.Get(total)
	defer bufpool.Put(frame)

	binary.BigEndian.PutUint32(frame[0:4], uint32(total))
	frame[4] = packet.WireID
	copy(frame[frameHeaderLen:], packet.Body)

	payload := frame[frameHeaderLen:]
	cipher.XORKeyStream(payload, payload)

	metrics.FrameObserved("write", len(payload))
	metrics.CipherBytesProcessed("send", len(payload))

	_, err := w.Write(frame)
	return err
}
