package avm2

// TraitKind is the low nibble of a trait's kind-and-attrs byte,
// selecting which of the four trait bodies follows.
type TraitKind uint8

const (
	TraitKindSlot     TraitKind = 0
	TraitKindMethod   TraitKind = 1
	TraitKindGetter   TraitKind = 2
	TraitKindSetter   TraitKind = 3
	TraitKindClass    TraitKind = 4
	TraitKindFunction TraitKind = 5
	TraitKindConst    TraitKind = 6
)

const traitAttrMetadata = 0x04

// ConstantKind is the one-byte tag preceding a trait slot's default
// value, identifying which constant-pool table value_idx indexes into.
type ConstantKind uint8

const (
	ConstantKindUndefined          ConstantKind = 0x00
	ConstantKindUtf8               ConstantKind = 0x01
	ConstantKindInt                ConstantKind = 0x03
	ConstantKindUint               ConstantKind = 0x04
	ConstantKindPrivateNs          ConstantKind = 0x05
	ConstantKindDouble             ConstantKind = 0x06
	ConstantKindNamespace          ConstantKind = 0x08
	ConstantKindFalse              ConstantKind = 0x0a
	ConstantKindTrue               ConstantKind = 0x0b
	ConstantKindNull               ConstantKind = 0x0c
	ConstantKindPackageNamespace   ConstantKind = 0x16
	ConstantKindPackageInternalNs  ConstantKind = 0x17
	ConstantKindProtectedNamespace ConstantKind = 0x18
	ConstantKindExplicitNamespace  ConstantKind = 0x19
	ConstantKindStaticProtectedNs  ConstantKind = 0x1a
)

func parseConstantKind(b byte) (ConstantKind, error) {
	switch ConstantKind(b) {
	case ConstantKindUndefined, ConstantKindUtf8, ConstantKindInt, ConstantKindUint,
		ConstantKindPrivateNs, ConstantKindDouble, ConstantKindNamespace, ConstantKindFalse,
		ConstantKindTrue, ConstantKindNull, ConstantKindPackageNamespace, ConstantKindPackageInternalNs,
		ConstantKindProtectedNamespace, ConstantKindExplicitNamespace, ConstantKindStaticProtectedNs:
		return ConstantKind(b), nil
	default:
		return 0, &InvalidFlagError{Byte: b, TypeName: "ConstantKind"}
	}
}

// Trait is a named slot/method/class/function on a class or instance.
// Only the fields relevant to its Kind are populated; this struct
// collapses the four distinct trait bodies (slot/const, method-like,
// class-binding, function) into one shape.
type Trait struct {
	NameIdx uint32
	Kind    TraitKind
	Attrs   uint8

	// Slot / Const
	SlotID      uint32
	TypeNameIdx uint32
	ValueIdx    uint32
	HasValue    bool
	ValueKind   ConstantKind

	// Method / Getter / Setter
	DispID    uint32
	MethodIdx uint32

	// Class
	ClassIdx uint32

	// Function
	FunctionIdx uint32

	MetadataIndices []uint32
}

func parseTrait(r *Reader) (Trait, error) {
	nameIdx, err := r.U30()
	if err != nil {
		return Trait{}, err
	}
	kindByte, err := r.U8()
	if err != nil {
		return Trait{}, err
	}
	attrs := kindByte >> 4
	kind := TraitKind(kindByte & 0x0f)

	t := Trait{NameIdx: nameIdx, Kind: kind, Attrs: attrs}

	switch kind {
	case TraitKindSlot, TraitKindConst:
		t.SlotID, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		t.TypeNameIdx, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		t.ValueIdx, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		if t.ValueIdx != 0 {
			b, err := r.U8()
			if err != nil {
				return Trait{}, err
			}
			t.ValueKind, err = parseConstantKind(b)
			if err != nil {
				return Trait{}, err
			}
			t.HasValue = true
		}

	case TraitKindMethod, TraitKindGetter, TraitKindSetter:
		t.DispID, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		t.MethodIdx, err = r.U30()
		if err != nil {
			return Trait{}, err
		}

	case TraitKindClass:
		t.SlotID, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		t.ClassIdx, err = r.U30()
		if err != nil {
			return Trait{}, err
		}

	case TraitKindFunction:
		t.SlotID, err = r.U30()
		if err != nil {
			return Trait{}, err
		}
		t.FunctionIdx, err = r.U30()
		if err != nil {
			return Trait{}, err
		}

	default:
		return Trait{}, &InvalidFlagError{Byte: kindByte & 0x0f, TypeName: "TraitKind"}
	}

	if attrs&traitAttrMetadata == traitAttrMetadata {
		n, err := r.U30()
		if err != nil {
			return Trait{}, err
		}
		indices := make([]uint32, n)
		for i := range indices {
			idx, err := r.U30()
			if err != nil {
				return Trait{}, err
			}
			indices[i] = idx
		}
		t.MetadataIndices = indices
	}

	return t, nil
}

func parseTraits(r *Reader) ([]Trait, error) {
	n, err := r.U30()
	if err != nil {
		return nil, err
	}
	traits := make([]Trait, n)
	for i := range traits {
		tr, err := parseTrait(r)
		if err != nil {
			return nil, err
		}
		traits[i] = tr
	}
	return traits, nil
}

// SlotValue is the resolved default value of a Slot/Const trait: at
// most one of the typed fields is meaningful, selected by Kind.
type SlotValue struct {
	Kind   SlotValueKind
	Int    int32
	Uint   uint32
	Double float64
	String string
}

// SlotValueKind discriminates which field of SlotValue holds data.
type SlotValueKind int

const (
	SlotValueNone SlotValueKind = iota
	SlotValueInt
	SlotValueUint
	SlotValueDouble
	SlotValueString
)

// LinkedSlot is a Slot/Const trait joined against the constant pool:
// its resolved (namespace, name) and its resolved default value.
type LinkedSlot struct {
	Namespace string
	Name      string
	SlotID    uint32
	Value     SlotValue
}

// linkSlot resolves a Slot/Const trait against cp. Traits of any other
// kind are the caller's responsibility to filter out first.
func linkSlot(t Trait, cp *ConstantPool) (LinkedSlot, error) {
	ns, name, err := cp.ResolveQName(t.NameIdx)
	if err != nil {
		return LinkedSlot{}, err
	}

	value := SlotValue{Kind: SlotValueNone}
	if t.HasValue {
		switch t.ValueKind {
		case ConstantKindInt:
			value = SlotValue{Kind: SlotValueInt, Int: cp.Int(t.ValueIdx)}
		case ConstantKindUint:
			value = SlotValue{Kind: SlotValueUint, Uint: cp.Uint(t.ValueIdx)}
		case ConstantKindDouble:
			value = SlotValue{Kind: SlotValueDouble, Double: cp.Double(t.ValueIdx)}
		case ConstantKindUtf8:
			value = SlotValue{Kind: SlotValueString, String: cp.String(t.ValueIdx)}
		default:
			value = SlotValue{Kind: SlotValueNone}
		}
	}

	return LinkedSlot{Namespace: ns, Name: name, SlotID: t.SlotID, Value: value}, nil
}
