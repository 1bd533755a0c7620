package protocol

import "github.com/oryxlabs/realmcore/pkg/wire"

// RawPacket is one decrypted frame payload: a wire byte tag plus its
// undecoded body bytes. The connection layer produces and consumes
// RawPacket; it never interprets the body.
type RawPacket struct {
	WireID uint8
	Body   []byte
}

// Packet is a RawPacket resolved to an internal kind and decoded into
// its typed body via that kind's registered adapter.
type Packet struct {
	Kind Kind
	Body any
}

// AdapterError wraps a decode or encode failure surfaced by a packet's
// field adapters (as opposed to an unmapped wire ID or kind, which are
// reported directly via UnmappedWireIDError / UnmappedKindError).
type AdapterError struct {
	Inner error
}

func (e *AdapterError) Error() string { return "adapter error: " + e.Inner.Error() }
func (e *AdapterError) Unwrap() error { return e.Inner }

// ToPacket resolves a RawPacket's wire ID against m and decodes its
// body into a typed Packet.
func ToPacket(raw RawPacket, m *Mappings) (Packet, error) {
	kind, err := m.ToInternal(raw.WireID)
	if err != nil {
		return Packet{}, err
	}
	r := wire.NewReader(raw.Body)
	body := kind.Decode(r)
	if err := r.Err(); err != nil {
		return Packet{}, &AdapterError{Inner: err}
	}
	return Packet{Kind: kind, Body: body}, nil
}

// ToRawPacket resolves a Packet's kind against m and encodes its body
// into wire bytes.
func ToRawPacket(p Packet, m *Mappings) (RawPacket, error) {
	wireID, err := m.ToWire(p.Kind)
	if err != nil {
		return RawPacket{}, err
	}
	w := wire.NewWriter(64)
	p.Kind.Encode(w, p.Body)
	if err := w.Err(); err != nil {
		return RawPacket{}, &AdapterError{Inner: err}
	}
	return RawPacket{WireID: wireID, Body: w.Bytes()}, nil
}
