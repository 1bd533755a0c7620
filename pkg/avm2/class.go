package avm2

// instance flag bits.
const (
	classFlagSealed      = 0x01
	classFlagFinal       = 0x02
	classFlagInterface   = 0x04
	classFlagProtectedNS = 0x08
)

// instance is the per-class record from the instance table: name,
// super-name, flags, implemented interfaces, instance initializer, and
// instance traits.
type instance struct {
	nameIdx          uint32
	superNameIdx     uint32
	flags            uint8
	protectedNSIdx   uint32
	interfaceIndices []uint32
	iinitIdx         uint32
	traits           []Trait
}

func parseInstance(r *Reader) (instance, error) {
	nameIdx, err := r.U30()
	if err != nil {
		return instance{}, err
	}
	superNameIdx, err := r.U30()
	if err != nil {
		return instance{}, err
	}
	flags, err := r.U8()
	if err != nil {
		return instance{}, err
	}

	var protectedNSIdx uint32
	if flags&classFlagProtectedNS == classFlagProtectedNS {
		protectedNSIdx, err = r.U30()
		if err != nil {
			return instance{}, err
		}
	}

	numInterfaces, err := r.U30()
	if err != nil {
		return instance{}, err
	}
	interfaceIndices := make([]uint32, numInterfaces)
	for i := range interfaceIndices {
		idx, err := r.U30()
		if err != nil {
			return instance{}, err
		}
		interfaceIndices[i] = idx
	}

	iinitIdx, err := r.U30()
	if err != nil {
		return instance{}, err
	}

	traits, err := parseTraits(r)
	if err != nil {
		return instance{}, err
	}

	return instance{
		nameIdx:          nameIdx,
		superNameIdx:     superNameIdx,
		flags:            flags,
		protectedNSIdx:   protectedNSIdx,
		interfaceIndices: interfaceIndices,
		iinitIdx:         iinitIdx,
		traits:           traits,
	}, nil
}

// class is the per-class record from the class table: the static
// initializer index and static traits, paired with the instance at the
// same index to form a LinkedClass.
type class struct {
	cinitIdx uint32
	traits   []Trait
}

func parseClass(r *Reader) (class, error) {
	cinitIdx, err := r.U30()
	if err != nil {
		return class{}, err
	}
	traits, err := parseTraits(r)
	if err != nil {
		return class{}, err
	}
	return class{cinitIdx: cinitIdx, traits: traits}, nil
}

// LinkedClass joins one instance record and its paired class record
// through the constant pool: its resolved (namespace, name), optional
// supertype name, and every Slot/Const trait (instance and static)
// resolved to a (name, slot_id, value) triple.
type LinkedClass struct {
	Namespace string
	Name      string

	HasSuper       bool
	SuperNamespace string
	SuperName      string

	ConstSlots []LinkedSlot
}

func linkClass(inst instance, cls class, cp *ConstantPool) (LinkedClass, error) {
	ns, name, err := cp.ResolveQName(inst.nameIdx)
	if err != nil {
		return LinkedClass{}, err
	}

	lc := LinkedClass{Namespace: ns, Name: name}

	if inst.superNameIdx != 0 {
		superNs, superName, err := cp.ResolveQName(inst.superNameIdx)
		if err == nil {
			lc.HasSuper = true
			lc.SuperNamespace = superNs
			lc.SuperName = superName
		}
	}

	allTraits := make([]Trait, 0, len(inst.traits)+len(cls.traits))
	allTraits = append(allTraits, inst.traits...)
	allTraits = append(allTraits, cls.traits...)

	for _, t := range allTraits {
		if t.Kind != TraitKindSlot && t.Kind != TraitKindConst {
			continue
		}
		slot, err := linkSlot(t, cp)
		if err != nil {
			// A trait named via a non-QName multiname shape; skip it
			// rather than fail the whole class.
			continue
		}
		lc.ConstSlots = append(lc.ConstSlots, slot)
	}

	return lc, nil
}
