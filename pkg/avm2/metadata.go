package avm2

// metadataItem is one key-value pair of a metadata record.
type metadataItem struct {
	keyIdx   uint32
	valueIdx uint32
}

// metadata is parsed only to advance the cursor; this core has no use
// for AVM2 metadata records.
type metadata struct {
	nameIdx uint32
	items   []metadataItem
}

func parseMetadataItem(r *Reader) (metadataItem, error) {
	keyIdx, err := r.U30()
	if err != nil {
		return metadataItem{}, err
	}
	valueIdx, err := r.U30()
	if err != nil {
		return metadataItem{}, err
	}
	return metadataItem{keyIdx: keyIdx, valueIdx: valueIdx}, nil
}

func parseMetadata(r *Reader) (metadata, error) {
	nameIdx, err := r.U30()
	if err != nil {
		return metadata{}, err
	}
	n, err := r.U30()
	if err != nil {
		return metadata{}, err
	}
	items := make([]metadataItem, n)
	for i := range items {
		it, err := parseMetadataItem(r)
		if err != nil {
			return metadata{}, err
		}
		items[i] = it
	}
	return metadata{nameIdx: nameIdx, items: items}, nil
}

func parseMetadataTable(r *Reader) ([]metadata, error) {
	n, err := r.U30()
	if err != nil {
		return nil, err
	}
	table := make([]metadata, n)
	for i := range table {
		m, err := parseMetadata(r)
		if err != nil {
			return nil, err
		}
		table[i] = m
	}
	return table, nil
}
