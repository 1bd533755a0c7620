package avm2

// method flag bits (MethodInfo.Flags).
const (
	methodFlagHasOptional   = 0x08
	methodFlagHasParamNames = 0x80
)

// methodInfo is parsed only so the cursor advances correctly past the
// method table; this core never dispatches AVM2 method bodies, so none
// of its fields are retained on AbcFile.
type methodInfo struct {
	returnTypeIdx    uint32
	paramTypeIndices []uint32
	nameIdx          uint32
	flags            uint8
}

func parseMethodInfo(r *Reader) (methodInfo, error) {
	numParams, err := r.U30()
	if err != nil {
		return methodInfo{}, err
	}
	returnTypeIdx, err := r.U30()
	if err != nil {
		return methodInfo{}, err
	}
	paramTypeIndices := make([]uint32, numParams)
	for i := range paramTypeIndices {
		idx, err := r.U30()
		if err != nil {
			return methodInfo{}, err
		}
		paramTypeIndices[i] = idx
	}
	nameIdx, err := r.U30()
	if err != nil {
		return methodInfo{}, err
	}
	flags, err := r.U8()
	if err != nil {
		return methodInfo{}, err
	}

	if flags&methodFlagHasOptional == methodFlagHasOptional {
		n, err := r.U30()
		if err != nil {
			return methodInfo{}, err
		}
		for i := uint32(0); i < n; i++ {
			if _, err := r.U30(); err != nil { // value_idx
				return methodInfo{}, err
			}
			if _, err := r.U8(); err != nil { // value_kind
				return methodInfo{}, err
			}
		}
	}

	if flags&methodFlagHasParamNames == methodFlagHasParamNames {
		for i := uint32(0); i < numParams; i++ {
			if _, err := r.U30(); err != nil {
				return methodInfo{}, err
			}
		}
	}

	return methodInfo{
		returnTypeIdx:    returnTypeIdx,
		paramTypeIndices: paramTypeIndices,
		nameIdx:          nameIdx,
		flags:            flags,
	}, nil
}

func parseMethods(r *Reader) ([]methodInfo, error) {
	n, err := r.U30()
	if err != nil {
		return nil, err
	}
	methods := make([]methodInfo, n)
	for i := range methods {
		m, err := parseMethodInfo(r)
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return methods, nil
}
