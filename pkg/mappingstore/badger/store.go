// Package badger caches the last successfully extracted Mappings and
// Parameters pair per build version in an embedded BadgerDB, so a
// restart of realmcored doesn't require re-running the AVM2 parse
// against a potentially large archived client.
package badger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/oryxlabs/realmcore/internal/telemetry"
	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

// Store is an embedded key-value cache of extracted mapping data,
// keyed by build version.
type Store struct {
	db *badgerdb.DB
}

// Open opens (creating if absent) the Badger database at path.
func Open(path string) (*Store, error) {
	opts := badgerdb.DefaultOptions(path).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("mappingstore: open badger at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

const keyPrefix = "mappings/"

func keyFor(buildVersion string) []byte {
	return []byte(keyPrefix + buildVersion)
}

// record is the on-disk encoding of one cache entry: the hex cipher
// key plus wire table (sufficient to reconstruct a Mappings via
// protocol.NewMappings) alongside the extracted Parameters.
type record struct {
	Rc4Hex     string               `json:"rc4_hex"`
	WireTable  map[uint8]string     `json:"wire_table"`
	Parameters extractor.Parameters `json:"parameters"`
}

// Put stores the extracted Mappings/Parameters pair for buildVersion,
// overwriting any prior entry.
func (s *Store) Put(ctx context.Context, buildVersion string, mappings *protocol.Mappings, params *extractor.Parameters) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := telemetry.StartCacheSpan(ctx, "write", telemetry.ExtractorBuild(buildVersion))
	defer span.End()

	key := mappings.Key()
	rec := record{
		Rc4Hex:     hex.EncodeToString(key[:]),
		WireTable:  mappings.WireTable(),
		Parameters: *params,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("mappingstore: encode %s: %w", buildVersion, err)
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(keyFor(buildVersion), data)
	})
}

// Get retrieves the cached Mappings/Parameters pair for buildVersion.
// ok is false if no entry exists; it is never true alongside a non-nil
// error.
func (s *Store) Get(ctx context.Context, buildVersion string) (mappings *protocol.Mappings, params *extractor.Parameters, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, false, err
	}

	_, span := telemetry.StartCacheSpan(ctx, "lookup", telemetry.ExtractorBuild(buildVersion))
	defer span.End()

	var rec record
	err = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(keyFor(buildVersion))
		if err == badgerdb.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, nil, false, fmt.Errorf("mappingstore: get %s: %w", buildVersion, err)
	}
	if rec.Rc4Hex == "" {
		span.SetAttributes(telemetry.CacheHit(false))
		return nil, nil, false, nil
	}
	span.SetAttributes(telemetry.CacheHit(true))

	m, err := protocol.NewMappings(rec.Rc4Hex, rec.WireTable)
	if err != nil {
		return nil, nil, false, fmt.Errorf("mappingstore: rebuild mappings for %s: %w", buildVersion, err)
	}
	p := rec.Parameters
	return m, &p, true, nil
}

// Versions lists every build version with a cached entry, in key order.
func (s *Store) Versions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var versions []string
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			versions = append(versions, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mappingstore: list versions: %w", err)
	}
	return versions, nil
}
