package avm2

// NamespaceKind is the one-byte tag distinguishing the flavor of an
// AVM2 namespace constant.
type NamespaceKind uint8

const (
	NamespaceKindNamespace         NamespaceKind = 0x08
	NamespaceKindPrivateNs         NamespaceKind = 0x05
	NamespaceKindPackageNamespace  NamespaceKind = 0x16
	NamespaceKindPackageInternalNs NamespaceKind = 0x17
	NamespaceKindProtectedNs       NamespaceKind = 0x18
	NamespaceKindExplicitNs        NamespaceKind = 0x19
	NamespaceKindStaticProtectedNs NamespaceKind = 0x1a
)

func parseNamespaceKind(b byte) (NamespaceKind, error) {
	switch NamespaceKind(b) {
	case NamespaceKindNamespace, NamespaceKindPrivateNs, NamespaceKindPackageNamespace,
		NamespaceKindPackageInternalNs, NamespaceKindProtectedNs, NamespaceKindExplicitNs,
		NamespaceKindStaticProtectedNs:
		return NamespaceKind(b), nil
	default:
		return 0, &InvalidFlagError{Byte: b, TypeName: "NamespaceKind"}
	}
}

// Namespace is one entry of the constant pool's namespace table.
type Namespace struct {
	Kind      NamespaceKind
	NameIndex uint32
}

func parseNamespace(r *Reader) (Namespace, error) {
	b, err := r.U8()
	if err != nil {
		return Namespace{}, err
	}
	kind, err := parseNamespaceKind(b)
	if err != nil {
		return Namespace{}, err
	}
	nameIdx, err := r.U30()
	if err != nil {
		return Namespace{}, err
	}
	return Namespace{Kind: kind, NameIndex: nameIdx}, nil
}

// NamespaceSet is one entry of the constant pool's namespace-set table:
// an ordered list of indices into the namespace table.
type NamespaceSet struct {
	NamespaceIndices []uint32
}

func parseNamespaceSet(r *Reader) (NamespaceSet, error) {
	n, err := r.U30()
	if err != nil {
		return NamespaceSet{}, err
	}
	indices := make([]uint32, n)
	for i := range indices {
		idx, err := r.U30()
		if err != nil {
			return NamespaceSet{}, err
		}
		indices[i] = idx
	}
	return NamespaceSet{NamespaceIndices: indices}, nil
}

// MultinameKind is the one-byte tag selecting one of the seven naming
// shapes a Multiname constant can take. Typename (0x1d) is undocumented
// in the public ABC format but appears in real bytecode.
type MultinameKind uint8

const (
	MultinameKindQName       MultinameKind = 0x07
	MultinameKindQNameA      MultinameKind = 0x0d
	MultinameKindRTQName     MultinameKind = 0x0f
	MultinameKindRTQNameA    MultinameKind = 0x10
	MultinameKindRTQNameL    MultinameKind = 0x11
	MultinameKindRTQNameLA   MultinameKind = 0x12
	MultinameKindMultiname   MultinameKind = 0x09
	MultinameKindMultinameA  MultinameKind = 0x0e
	MultinameKindMultinameL  MultinameKind = 0x1b
	MultinameKindMultinameLA MultinameKind = 0x1c
	MultinameKindTypename    MultinameKind = 0x1d
)

// Multiname is a sum of the seven naming shapes AVM2 supports. Only
// NsIdx/NameIdx are meaningful for QName/QNameA; the other shapes
// populate only the fields their variant defines. Resolving a
// Multiname to a (namespace, name) string pair is only supported for
// the QName shapes (see ResolveQName).
type Multiname struct {
	Kind MultinameKind

	NsIdx        uint32 // QName, QNameA
	NameIdx      uint32 // QName, QNameA, RTQName, RTQNameA, Multiname, MultinameA
	NsSetIdx     uint32 // Multiname, MultinameA, MultinameL, MultinameLA
	QNameIndex   uint32 // Typename
	ParamIndices []uint32
}

func parseMultiname(r *Reader) (Multiname, error) {
	b, err := r.U8()
	if err != nil {
		return Multiname{}, err
	}
	kind := MultinameKind(b)

	switch kind {
	case MultinameKindQName, MultinameKindQNameA:
		nsIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		nameIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		return Multiname{Kind: kind, NsIdx: nsIdx, NameIdx: nameIdx}, nil

	case MultinameKindRTQName, MultinameKindRTQNameA:
		nameIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		return Multiname{Kind: kind, NameIdx: nameIdx}, nil

	case MultinameKindRTQNameL, MultinameKindRTQNameLA:
		return Multiname{Kind: kind}, nil

	case MultinameKindMultiname, MultinameKindMultinameA:
		nameIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		nsSetIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		return Multiname{Kind: kind, NameIdx: nameIdx, NsSetIdx: nsSetIdx}, nil

	case MultinameKindMultinameL, MultinameKindMultinameLA:
		nsSetIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		return Multiname{Kind: kind, NsSetIdx: nsSetIdx}, nil

	case MultinameKindTypename:
		qnameIdx, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		n, err := r.U30()
		if err != nil {
			return Multiname{}, err
		}
		params := make([]uint32, n)
		for i := range params {
			p, err := r.U30()
			if err != nil {
				return Multiname{}, err
			}
			params[i] = p
		}
		return Multiname{Kind: kind, QNameIndex: qnameIdx, ParamIndices: params}, nil

	default:
		return Multiname{}, &InvalidFlagError{Byte: b, TypeName: "MultinameKind"}
	}
}

// NotQNameError is returned by ResolveQName when asked to resolve a
// multiname shape other than QName/QNameA. No real call site ever hits
// this path; it exists so malformed or adversarial bytecode surfaces a
// recoverable error rather than a panic.
type NotQNameError struct {
	Kind MultinameKind
}

func (e *NotQNameError) Error() string {
	return "avm2: multiname is not a QName shape"
}

// ConstantPool holds the seven parallel 1-indexed tables referenced by
// index throughout the bytecode. Index 0 of every table is the
// sentinel "any/none" entry; this is modeled by padding each slice with
// a zero-value element at index 0 rather than subtracting one at every
// access site.
type ConstantPool struct {
	Ints          []int32
	Uints         []uint32
	Doubles       []float64
	Strings       []string
	Namespaces    []Namespace
	NamespaceSets []NamespaceSet
	Multinames    []Multiname
}

func parseConstantPool(r *Reader) (*ConstantPool, error) {
	cp := &ConstantPool{
		Ints:          []int32{0},
		Uints:         []uint32{0},
		Doubles:       []float64{0},
		Strings:       []string{""},
		Namespaces:    []Namespace{{}},
		NamespaceSets: []NamespaceSet{{}},
		Multinames:    []Multiname{{}},
	}

	numInts, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numInts; i++ {
		v, err := r.S32()
		if err != nil {
			return nil, err
		}
		cp.Ints = append(cp.Ints, v)
	}

	numUints, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numUints; i++ {
		v, err := r.U30()
		if err != nil {
			return nil, err
		}
		cp.Uints = append(cp.Uints, v)
	}

	numDoubles, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numDoubles; i++ {
		v, err := r.F64()
		if err != nil {
			return nil, err
		}
		cp.Doubles = append(cp.Doubles, v)
	}

	numStrings, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numStrings; i++ {
		v, err := r.String()
		if err != nil {
			return nil, err
		}
		cp.Strings = append(cp.Strings, v)
	}

	numNamespaces, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numNamespaces; i++ {
		v, err := parseNamespace(r)
		if err != nil {
			return nil, err
		}
		cp.Namespaces = append(cp.Namespaces, v)
	}

	numNsSets, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numNsSets; i++ {
		v, err := parseNamespaceSet(r)
		if err != nil {
			return nil, err
		}
		cp.NamespaceSets = append(cp.NamespaceSets, v)
	}

	numMultinames, err := countMinusOne(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numMultinames; i++ {
		v, err := parseMultiname(r)
		if err != nil {
			return nil, err
		}
		cp.Multinames = append(cp.Multinames, v)
	}

	return cp, nil
}

// countMinusOne reads a u30 count and treats 0 the same as 1 (zero real
// elements), since index 0 of every table is the reserved sentinel.
func countMinusOne(r *Reader) (uint32, error) {
	n, err := r.U30()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return n - 1, nil
}

// Int looks up a signed integer constant by index; index 0 returns 0.
func (cp *ConstantPool) Int(i uint32) int32 {
	if int(i) >= len(cp.Ints) {
		return 0
	}
	return cp.Ints[i]
}

// Uint looks up an unsigned integer constant by index.
func (cp *ConstantPool) Uint(i uint32) uint32 {
	if int(i) >= len(cp.Uints) {
		return 0
	}
	return cp.Uints[i]
}

// Double looks up a floating-point constant by index.
func (cp *ConstantPool) Double(i uint32) float64 {
	if int(i) >= len(cp.Doubles) {
		return 0
	}
	return cp.Doubles[i]
}

// String looks up a string constant by index; index 0 returns "".
func (cp *ConstantPool) String(i uint32) string {
	if int(i) >= len(cp.Strings) {
		return ""
	}
	return cp.Strings[i]
}

// Namespace looks up a namespace constant by index.
func (cp *ConstantPool) Namespace(i uint32) Namespace {
	if int(i) >= len(cp.Namespaces) {
		return Namespace{}
	}
	return cp.Namespaces[i]
}

// Multiname looks up a multiname constant by index.
func (cp *ConstantPool) Multiname(i uint32) Multiname {
	if int(i) >= len(cp.Multinames) {
		return Multiname{}
	}
	return cp.Multinames[i]
}

// ResolveQName resolves the multiname at index i to a (namespace, name)
// string pair. Only the QName/QNameA shapes are resolved; any other
// shape returns NotQNameError. ns_idx == 0 resolves to "*"; a namespace
// whose own name_index is 0 resolves to "". name_idx == 0 resolves to
// "*".
func (cp *ConstantPool) ResolveQName(i uint32) (namespace, name string, err error) {
	m := cp.Multiname(i)
	if m.Kind != MultinameKindQName && m.Kind != MultinameKindQNameA {
		return "", "", &NotQNameError{Kind: m.Kind}
	}

	if m.NsIdx == 0 {
		namespace = "*"
	} else {
		ns := cp.Namespace(m.NsIdx)
		if ns.NameIndex == 0 {
			namespace = ""
		} else {
			namespace = cp.String(ns.NameIndex)
		}
	}

	if m.NameIdx == 0 {
		name = "*"
	} else {
		name = cp.String(m.NameIdx)
	}

	return namespace, name, nil
}
