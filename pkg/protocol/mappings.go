package protocol

import (
	"encoding/hex"
	"fmt"
)

// InvalidRc4HexError reports a cipher key string that is not valid hex.
type InvalidRc4HexError struct {
	Original string
	Detail   string
}

func (e *InvalidRc4HexError) Error() string {
	return fmt.Sprintf("invalid rc4 key hex %q: %s", e.Original, e.Detail)
}

// InvalidRc4LenError reports a cipher key that decoded to the wrong
// byte length; the format requires exactly 26 bytes (two 13-byte
// halves, one per direction).
type InvalidRc4LenError struct {
	Original string
	Actual   int
}

func (e *InvalidRc4LenError) Error() string {
	return fmt.Sprintf("invalid rc4 key length for %q: got %d bytes, want 26", e.Original, e.Actual)
}

const rc4KeyLen = 26

// UnmappedWireIDError is returned when decoding encounters a wire byte
// tag absent from the build's Mappings.
type UnmappedWireIDError struct {
	WireID uint8
}

func (e *UnmappedWireIDError) Error() string {
	return fmt.Sprintf("unmapped wire id: 0x%02x", e.WireID)
}

// UnmappedKindError is returned when encoding is asked to serialize a
// kind absent from the build's Mappings.
type UnmappedKindError struct {
	Kind Kind
}

func (e *UnmappedKindError) Error() string {
	return fmt.Sprintf("unmapped kind: %s", e.Kind.Name())
}

// Mappings is the bijective wire-ID <-> internal-kind table for one
// specific client build, plus the raw cipher key material that build
// was compiled against. Immutable after construction; safe to share
// read-only across every connection that build serves.
type Mappings struct {
	key        [rc4KeyLen]byte
	toInternal map[uint8]Kind
	toWire     map[Kind]uint8
}

// NewMappings builds a Mappings from a hex-encoded 26-byte cipher key
// and a wire-ID -> kind-name table, typically produced by the
// extractor's GameServerConnection slot walk.
func NewMappings(rc4Hex string, wireToName map[uint8]string) (*Mappings, error) {
	raw, err := hex.DecodeString(rc4Hex)
	if err != nil {
		return nil, &InvalidRc4HexError{Original: rc4Hex, Detail: err.Error()}
	}
	if len(raw) != rc4KeyLen {
		return nil, &InvalidRc4LenError{Original: rc4Hex, Actual: len(raw)}
	}
	m := &Mappings{
		toInternal: make(map[uint8]Kind, len(wireToName)),
		toWire:     make(map[Kind]uint8, len(wireToName)),
	}
	copy(m.key[:], raw)
	for wireID, name := range wireToName {
		kind, ok := KindFromName(name)
		if !ok {
			continue
		}
		m.toInternal[wireID] = kind
		m.toWire[kind] = wireID
	}
	return m, nil
}

// Key returns the 26-byte cipher key this build was extracted with.
func (m *Mappings) Key() [rc4KeyLen]byte {
	return m.key
}

// ToInternal maps a wire byte tag to its internal kind.
func (m *Mappings) ToInternal(wireID uint8) (Kind, error) {
	k, ok := m.toInternal[wireID]
	if !ok {
		return 0, &UnmappedWireIDError{WireID: wireID}
	}
	return k, nil
}

// ToWire maps an internal kind to its wire byte tag for this build.
func (m *Mappings) ToWire(k Kind) (uint8, error) {
	id, ok := m.toWire[k]
	if !ok {
		return 0, &UnmappedKindError{Kind: k}
	}
	return id, nil
}

// Len returns the number of mapped kinds.
func (m *Mappings) Len() int {
	return len(m.toInternal)
}

// WireTable returns a copy of this build's wire-ID -> kind-name table,
// suitable for JSON rendering by the admin API.
func (m *Mappings) WireTable() map[uint8]string {
	table := make(map[uint8]string, len(m.toInternal))
	for wireID, k := range m.toInternal {
		table[wireID] = k.Name()
	}
	return table
}

// FindUnmapped returns every registered kind absent from this build's
// wire table. A build legitimately omitting packets (an older client
// that never shipped a feature) is not an error condition; callers
// typically log this at warning level.
func (m *Mappings) FindUnmapped() []Kind {
	var unmapped []Kind
	for _, k := range AllKinds() {
		if _, ok := m.toWire[k]; !ok {
			unmapped = append(unmapped, k)
		}
	}
	return unmapped
}
