package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oryxlabs/realmcore/pkg/adminapi/auth"
	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

const testRc4Hex = "0102030405060708090a0b0c0d0102030405060708090a0b0c0d"

type stubReloader struct {
	mappings   *protocol.Mappings
	parameters *extractor.Parameters
	err        error
	calls      int
}

func (s *stubReloader) Reload(ctx context.Context) (*protocol.Mappings, *extractor.Parameters, error) {
	s.calls++
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.mappings, s.parameters, nil
}

type auditCall struct {
	buildVersion     string
	mapped, unmapped int
	err              error
}

type stubAudit struct {
	calls []auditCall
}

func (a *stubAudit) RecordExtraction(ctx context.Context, buildVersion string, mapped, unmapped int, err error) error {
	a.calls = append(a.calls, auditCall{buildVersion: buildVersion, mapped: mapped, unmapped: unmapped, err: err})
	return nil
}

func newTestMappings(t *testing.T, wireToName map[uint8]string) *protocol.Mappings {
	t.Helper()
	m, err := protocol.NewMappings(testRc4Hex, wireToName)
	require.NoError(t, err)
	return m
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: "test-secret-key-that-is-at-least-32-characters-long",
	})
	require.NoError(t, err)
	return svc
}

// newTestServer builds a Server seeded with one mapped kind and a
// reloader/audit pair the tests can inspect.
func newTestServer(t *testing.T) (*Server, *stubReloader, *stubAudit) {
	t.Helper()
	mappings := newTestMappings(t, map[uint8]string{0x01: "Hello"})
	parameters := &extractor.Parameters{Version: "1.8.2", Port: 2050}
	reloader := &stubReloader{
		mappings:   newTestMappings(t, map[uint8]string{0x02: "Move"}),
		parameters: &extractor.Parameters{Version: "1.8.3", Port: 2050},
	}
	audit := &stubAudit{}
	s := NewServer("1.8.2", mappings, parameters, reloader, newTestJWTService(t), audit)
	return s, reloader, audit
}

func doRequest(t *testing.T, s *Server, method, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	NewRouter(s).ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleMappings(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/mappings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body mappingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[uint8]string{0x01: "Hello"}, body.WireTable)
	assert.Equal(t, 1, body.Mapped)
	assert.Len(t, body.Unmapped, protocol.NumKinds-1)
	assert.NotContains(t, body.Unmapped, "Hello")
}

func TestHandleParameters(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/parameters", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body extractor.Parameters
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1.8.2", body.Version)
	assert.Equal(t, uint16(2050), body.Port)
}

func TestHandleReloadRequiresBearer(t *testing.T) {
	s, reloader, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/admin/mappings/reload", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/admin/mappings/reload", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, 0, reloader.calls)
}

func TestHandleReloadSwapsMappings(t *testing.T) {
	s, reloader, audit := newTestServer(t)
	token, _, err := s.jwtService.IssueToken("ops")
	require.NoError(t, err)

	rec := doRequest(t, s, http.MethodPost, "/admin/mappings/reload", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, reloader.calls)

	// The active pair is the reloader's, atomically swapped in.
	assert.Equal(t, map[uint8]string{0x02: "Move"}, s.Mappings().WireTable())
	assert.Equal(t, "1.8.3", s.Parameters().Version)

	require.Len(t, audit.calls, 1)
	assert.Equal(t, "1.8.2", audit.calls[0].buildVersion)
	assert.Equal(t, 1, audit.calls[0].mapped)
	assert.NoError(t, audit.calls[0].err)
}

func TestHandleReloadFailureKeepsActivePair(t *testing.T) {
	s, reloader, audit := newTestServer(t)
	reloader.err = errors.New("bucket unreachable")
	token, _, err := s.jwtService.IssueToken("ops")
	require.NoError(t, err)

	rec := doRequest(t, s, http.MethodPost, "/admin/mappings/reload", token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The previously active pair stays in place.
	assert.Equal(t, map[uint8]string{0x01: "Hello"}, s.Mappings().WireTable())
	assert.Equal(t, "1.8.2", s.Parameters().Version)

	require.Len(t, audit.calls, 1)
	assert.Error(t, audit.calls[0].err)
}
