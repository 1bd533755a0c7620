package extractor

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// abcBuilder assembles a minimal AVM2 bytecode blob for tests. It
// mirrors the wire shapes pkg/avm2 decodes, not the other way around.
type abcBuilder struct {
	buf bytes.Buffer

	strings    []string
	namespaces int
	multinames []multinameRef
	ints       []int32
}

type multinameRef struct {
	nsIdx, nameIdx uint32
}

func newAbcBuilder() *abcBuilder {
	return &abcBuilder{strings: []string{""}}
}

func (b *abcBuilder) internString(s string) uint32 {
	b.strings = append(b.strings, s)
	return uint32(len(b.strings) - 1)
}

func (b *abcBuilder) internInt(v int32) uint32 {
	b.ints = append(b.ints, v)
	return uint32(len(b.ints))
}

// qname interns a QName multiname (ns, name) and returns its index.
func (b *abcBuilder) qname(nsIdx, nameIdx uint32) uint32 {
	b.multinames = append(b.multinames, multinameRef{nsIdx: nsIdx, nameIdx: nameIdx})
	return uint32(len(b.multinames))
}

func u30(buf *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf.WriteByte(b | 0x80)
		} else {
			buf.WriteByte(b)
			return
		}
	}
}

func str(buf *bytes.Buffer, s string) {
	u30(buf, uint32(len(s)))
	buf.WriteString(s)
}

// classSpec describes one class's name and integer/string const slots
// for buildABC.
type classSpec struct {
	name     string
	intSlots map[string]int32
	strSlots map[string]string
}

// buildABC produces a full bytecode container with one package
// namespace, a GameServerConnection-shaped class and/or a
// Parameters-shaped class (whichever classes are passed), and the
// given extra raw strings appended to the string table (used to place
// the "rc4" / key-hex pair).
func buildABC(t *testing.T, extraStrings []string, classes ...classSpec) []byte {
	t.Helper()
	b := newAbcBuilder()
	pkgIdx := b.internString("pkg")

	type builtClass struct {
		nameQName uint32
		intSlots  map[uint32]uint32 // slot multiname idx -> int pool idx
		strSlots  map[uint32]uint32 // slot multiname idx -> string pool idx
	}
	var built []builtClass

	// Every value must land in the constant pool before it is
	// serialized below, so interning happens up front.
	for _, c := range classes {
		classNameStr := b.internString(c.name)
		classQName := b.qname(1 /*namespace idx, filled below*/, classNameStr)
		bc := builtClass{nameQName: classQName, intSlots: map[uint32]uint32{}, strSlots: map[uint32]uint32{}}
		for name, v := range c.intSlots {
			nameStr := b.internString(name)
			slotQName := b.qname(1, nameStr)
			bc.intSlots[slotQName] = b.internInt(v)
		}
		for name, v := range c.strSlots {
			nameStr := b.internString(name)
			slotQName := b.qname(1, nameStr)
			bc.strSlots[slotQName] = b.internString(v)
		}
		built = append(built, bc)
	}

	for _, s := range extraStrings {
		b.internString(s)
	}

	var buf bytes.Buffer
	// header
	buf.Write([]byte{0, 0, 46, 0}) // minor=0, major=46 (LE u16 each)

	// ints
	u30(&buf, uint32(len(b.ints)+1))
	for _, v := range b.ints {
		u30(&buf, uint32(v))
	}
	// uints
	u30(&buf, 0)
	// doubles
	u30(&buf, 0)
	// strings
	u30(&buf, uint32(len(b.strings)))
	for _, s := range b.strings[1:] {
		str(&buf, s)
	}
	// namespaces: one PackageNamespace -> "pkg"
	u30(&buf, 2)
	buf.WriteByte(0x16) // PackageNamespace
	u30(&buf, pkgIdx)
	// namespace sets
	u30(&buf, 0)
	// multinames
	u30(&buf, uint32(len(b.multinames)+1))
	for _, m := range b.multinames {
		buf.WriteByte(0x07) // QName
		u30(&buf, m.nsIdx)
		u30(&buf, m.nameIdx)
	}
	// methods, metadata
	u30(&buf, 0)
	u30(&buf, 0)

	// classes
	u30(&buf, uint32(len(built)))

	// instances
	for _, bc := range built {
		u30(&buf, bc.nameQName) // name_idx
		u30(&buf, 0)            // super_name_idx
		buf.WriteByte(0)        // flags
		u30(&buf, 0)            // interfaces
		u30(&buf, 0)            // iinit_idx
		u30(&buf, 0)            // traits (instance-side: none, all on class side)
	}

	// class records
	for _, bc := range built {
		u30(&buf, 0) // cinit_idx
		numTraits := len(bc.intSlots) + len(bc.strSlots)
		u30(&buf, uint32(numTraits))
		for nameQName, valIdx := range bc.intSlots {
			u30(&buf, nameQName)
			buf.WriteByte(0x06) // Const
			u30(&buf, 0)        // slot_id
			u30(&buf, 0)        // type_name_idx
			u30(&buf, valIdx)
			buf.WriteByte(0x03) // ConstantKindInt
		}
		for nameQName, strIdx := range bc.strSlots {
			u30(&buf, nameQName)
			buf.WriteByte(0x06)
			u30(&buf, 0)
			u30(&buf, 0)
			u30(&buf, strIdx)
			buf.WriteByte(0x01) // ConstantKindUtf8
		}
	}

	return buf.Bytes()
}

func writeTag(buf *bytes.Buffer, code uint16, body []byte) {
	if len(body) < 0x3f {
		header := (code << 6) | uint16(len(body))
		var h [2]byte
		binary.LittleEndian.PutUint16(h[:], header)
		buf.Write(h[:])
	} else {
		header := (code << 6) | 0x3f
		var h [2]byte
		binary.LittleEndian.PutUint16(h[:], header)
		buf.Write(h[:])
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(len(body)))
		buf.Write(l[:])
	}
	buf.Write(body)
}

// buildMovie wraps abcData in a minimal uncompressed movie.
func buildMovie(abcData []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("FWS")
	buf.WriteByte(6)
	buf.Write(make([]byte, 4)) // length placeholder
	buf.WriteByte(0)           // RECT nbits=0
	buf.Write([]byte{0, 0, 0, 0})

	doabc := new(bytes.Buffer)
	doabc.Write(make([]byte, 4)) // flags
	doabc.WriteString("name\x00")
	doabc.Write(abcData)

	writeTag(&buf, 82, doabc.Bytes())
	writeTag(&buf, 0, nil)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)))
	return out
}

const testRc4Key = "00112233445566778899aabbccddeeff00112233445566778899"

func TestParseAndExtractMappings(t *testing.T) {
	abc := buildABC(t,
		[]string{"rc4", testRc4Key},
		classSpec{
			name: "GameServerConnection",
			intSlots: map[string]int32{
				"Hello": 1,
				"Move_": 5,
			},
		},
	)
	movie := buildMovie(abc)

	client, err := Parse(bytes.NewReader(movie))
	require.NoError(t, err)

	mappings, err := client.ExtractMappings()
	require.NoError(t, err)

	helloKind, err := mappings.ToInternal(1)
	require.NoError(t, err)
	assert.Equal(t, "Hello", helloKind.Name())

	moveKind, err := mappings.ToInternal(5)
	require.NoError(t, err)
	assert.Equal(t, "Move", moveKind.Name())
}

func TestParseAndExtractParameters(t *testing.T) {
	abc := buildABC(t, nil,
		classSpec{
			name: "Parameters",
			intSlots: map[string]int32{
				"PORT":                2050,
				"TUTORIAL_GAMEID":     1,
				"NEXUS_GAMEID":        2,
				"RANDOM_REALM_GAMEID": 3,
			},
			strSlots: map[string]string{
				"BUILD_VERSION": "1",
				"MINOR_VERSION": "2",
			},
		},
	)
	movie := buildMovie(abc)

	client, err := Parse(bytes.NewReader(movie))
	require.NoError(t, err)

	params, err := client.ExtractParameters()
	require.NoError(t, err)
	assert.Equal(t, "1.2", params.Version)
	assert.Equal(t, uint16(2050), params.Port)
	assert.Equal(t, int32(1), params.TutorialGameID)
	assert.Equal(t, int32(2), params.NexusGameID)
	assert.Equal(t, int32(3), params.RandomGameID)
}

func TestExtractMappingsMissingClass(t *testing.T) {
	abc := buildABC(t, []string{"rc4", testRc4Key})
	movie := buildMovie(abc)

	client, err := Parse(bytes.NewReader(movie))
	require.NoError(t, err)

	_, err = client.ExtractMappings()
	require.Error(t, err)
	var notFound *NameNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
