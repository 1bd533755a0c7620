package avm2

// AbcFile is the parsed bytecode container: header, constant pool, and
// the linked class table. Method bodies and scripts, which follow the
// class section in the full format, are never read — ParseAbcFile
// stops as soon as the class table is consumed.
type AbcFile struct {
	MinorVersion uint16
	MajorVersion uint16
	Constants    *ConstantPool
	Classes      []LinkedClass
}

// ParseAbcFile parses one bytecode container from buf: the two-u16
// version header, the seven-table constant pool, the method and
// metadata tables (consumed but discarded), and the paired
// instance/class tables, joined into LinkedClass values.
func ParseAbcFile(buf []byte) (*AbcFile, error) {
	r := NewReader(buf)

	minor, err := r.U16()
	if err != nil {
		return nil, err
	}
	major, err := r.U16()
	if err != nil {
		return nil, err
	}

	constants, err := parseConstantPool(r)
	if err != nil {
		return nil, err
	}

	if _, err := parseMethods(r); err != nil {
		return nil, err
	}
	if _, err := parseMetadataTable(r); err != nil {
		return nil, err
	}

	numClasses, err := r.U30()
	if err != nil {
		return nil, err
	}

	instances := make([]instance, numClasses)
	for i := range instances {
		inst, err := parseInstance(r)
		if err != nil {
			return nil, err
		}
		instances[i] = inst
	}

	classes := make([]LinkedClass, numClasses)
	for i := uint32(0); i < numClasses; i++ {
		cls, err := parseClass(r)
		if err != nil {
			return nil, err
		}
		linked, err := linkClass(instances[i], cls, constants)
		if err != nil {
			return nil, err
		}
		classes[i] = linked
	}

	return &AbcFile{
		MinorVersion: minor,
		MajorVersion: major,
		Constants:    constants,
		Classes:      classes,
	}, nil
}

// FindClass returns the linked class whose resolved name equals name,
// ignoring namespace, as the "GameServerConnection" and "Parameters"
// lookups both do.
func (a *AbcFile) FindClass(name string) (LinkedClass, bool) {
	for _, c := range a.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return LinkedClass{}, false
}
