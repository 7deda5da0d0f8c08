package api

import (
	"encoding/json"
	"net/http"
)

// handleEmbedStats reports rolling embedding-call latency percentiles.
func (s *Server) handleEmbedStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats.Snapshot())
}
