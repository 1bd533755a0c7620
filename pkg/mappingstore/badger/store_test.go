package badger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

const testRc4Hex = "0102030405060708090a0b0c0d0102030405060708090a0b0c0d"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mappings"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func newTestMappings(t *testing.T, wireToName map[uint8]string) *protocol.Mappings {
	t.Helper()
	m, err := protocol.NewMappings(testRc4Hex, wireToName)
	require.NoError(t, err)
	return m
}

func TestGetMissingEntry(t *testing.T) {
	s := openTestStore(t)

	mappings, params, ok, err := s.Get(context.Background(), "1.8.2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, mappings)
	assert.Nil(t, params)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := newTestMappings(t, map[uint8]string{0x01: "Hello", 0x0A: "Move"})
	inParams := &extractor.Parameters{
		Version: "1.8.2", Port: 2050,
		TutorialGameID: -1, NexusGameID: -2, RandomGameID: -3,
	}
	require.NoError(t, s.Put(ctx, "1.8.2", in, inParams))

	out, outParams, ok, err := s.Get(ctx, "1.8.2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in.Key(), out.Key())
	assert.Equal(t, in.WireTable(), out.WireTable())
	assert.Equal(t, inParams, outParams)
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := newTestMappings(t, map[uint8]string{0x01: "Hello"})
	require.NoError(t, s.Put(ctx, "1.8.2", first, &extractor.Parameters{Version: "1.8.2"}))

	second := newTestMappings(t, map[uint8]string{0x02: "Move"})
	require.NoError(t, s.Put(ctx, "1.8.2", second, &extractor.Parameters{Version: "1.8.2"}))

	out, _, ok, err := s.Get(ctx, "1.8.2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[uint8]string{0x02: "Move"}, out.WireTable())
}

func TestEntriesAreIsolatedByBuildVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "1.8.2",
		newTestMappings(t, map[uint8]string{0x01: "Hello"}),
		&extractor.Parameters{Version: "1.8.2"}))

	_, _, ok, err := s.Get(ctx, "1.8.3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVersionsListsCachedBuilds(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	versions, err := s.Versions(ctx)
	require.NoError(t, err)
	assert.Empty(t, versions)

	for _, v := range []string{"1.8.3", "1.8.2", "2.0.0"} {
		require.NoError(t, s.Put(ctx, v,
			newTestMappings(t, map[uint8]string{0x01: "Hello"}),
			&extractor.Parameters{Version: v}))
	}

	versions, err = s.Versions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.8.2", "1.8.3", "2.0.0"}, versions)
}

func TestGetHonorsCancelledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := s.Get(ctx, "1.8.2")
	require.ErrorIs(t, err, context.Canceled)
}
