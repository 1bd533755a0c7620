package adminapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oryxlabs/realmcore/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("adminapi: failed to encode response", "error", err)
	}
}

// handleHealth reports liveness. It never depends on the current
// Mappings, so it stays healthy across an in-progress reload.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type mappingsResponse struct {
	WireTable map[uint8]string `json:"wire_table"`
	Mapped    int              `json:"mapped_count"`
	Unmapped  []string         `json:"unmapped_kinds"`
}

func (s *Server) handleMappings(w http.ResponseWriter, r *http.Request) {
	mappings := s.Mappings()
	if mappings == nil {
		http.Error(w, "mappings not yet extracted", http.StatusServiceUnavailable)
		return
	}

	unmappedKinds := mappings.FindUnmapped()
	names := make([]string, 0, len(unmappedKinds))
	for _, k := range unmappedKinds {
		names = append(names, k.Name())
	}

	writeJSON(w, http.StatusOK, mappingsResponse{
		WireTable: mappings.WireTable(),
		Mapped:    mappings.Len(),
		Unmapped:  names,
	})
}

func (s *Server) handleParameters(w http.ResponseWriter, r *http.Request) {
	params := s.Parameters()
	if params == nil {
		http.Error(w, "parameters not yet extracted", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, params)
}

// handleReload triggers a fresh extraction and atomically swaps in the
// result. Protected by JWTAuth.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reloadTimeout)
	defer cancel()

	if err := s.Reload(ctx); err != nil {
		logger.Error("adminapi: reload failed", "error", err)
		http.Error(w, "reload failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mappingsResponse{
		WireTable: s.Mappings().WireTable(),
		Mapped:    s.Mappings().Len(),
	})
}
