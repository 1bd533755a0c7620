// Package adminapi exposes realmcored's operator-facing HTTP surface:
// liveness, the currently active wire Mappings and Parameters, and a
// JWT-protected endpoint to trigger a fresh extraction and swap it in as
// the pair this API serves. A reload does not reach a netcode.Listener,
// which keeps the Mappings it was constructed with.
package adminapi

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/oryxlabs/realmcore/pkg/adminapi/auth"
	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

// Reloader re-runs extraction against the configured client-binary
// source and returns the freshly extracted Mappings and Parameters.
// Implemented by the server's wiring code (cmd/realmcored), typically
// backed by pkg/clientstore plus pkg/extractor.
type Reloader interface {
	Reload(ctx context.Context) (*protocol.Mappings, *extractor.Parameters, error)
}

// AuditRecorder records the outcome of an extraction run. Implemented
// by pkg/auditstore; nil is accepted and simply skips recording.
type AuditRecorder interface {
	RecordExtraction(ctx context.Context, buildVersion string, mapped, unmapped int, err error) error
}

// Server holds the hot-swappable Mappings/Parameters pair reported by
// the admin API, plus the dependencies needed to serve and reload it.
// The pair is not shared with the connection listener.
type Server struct {
	mappings   atomic.Pointer[protocol.Mappings]
	parameters atomic.Pointer[extractor.Parameters]

	reloader     Reloader
	jwtService   *auth.JWTService
	audit        AuditRecorder
	buildVersion string
}

// NewServer constructs a Server seeded with an initial Mappings and
// Parameters pair (typically extracted once at startup).
func NewServer(buildVersion string, mappings *protocol.Mappings, parameters *extractor.Parameters, reloader Reloader, jwtService *auth.JWTService, audit AuditRecorder) *Server {
	s := &Server{
		reloader:     reloader,
		jwtService:   jwtService,
		audit:        audit,
		buildVersion: buildVersion,
	}
	s.mappings.Store(mappings)
	s.parameters.Store(parameters)
	return s
}

// Mappings returns the currently active Mappings. Safe for concurrent
// use; the returned value is immutable and may be held across a
// subsequent Reload.
func (s *Server) Mappings() *protocol.Mappings {
	return s.mappings.Load()
}

// Parameters returns the currently active Parameters.
func (s *Server) Parameters() *extractor.Parameters {
	return s.parameters.Load()
}

// Reload re-extracts Mappings and Parameters via the configured
// Reloader and atomically swaps them in. The swap changes only what
// Mappings and Parameters return; connections, including ones accepted
// later, use the Mappings their listener or dialer was given.
func (s *Server) Reload(ctx context.Context) error {
	mappings, parameters, err := s.reloader.Reload(ctx)
	if s.audit != nil {
		mapped, unmapped := 0, 0
		if mappings != nil {
			mapped = mappings.Len()
			unmapped = len(mappings.FindUnmapped())
		}
		_ = s.audit.RecordExtraction(ctx, s.buildVersion, mapped, unmapped, err)
	}
	if err != nil {
		return err
	}

	s.mappings.Store(mappings)
	s.parameters.Store(parameters)
	return nil
}

// reloadTimeout bounds how long a single admin-triggered reload may run
// before the HTTP handler gives up and reports a timeout; extraction
// itself is cheap, but the client-binary fetch may not be.
const reloadTimeout = 2 * time.Minute
