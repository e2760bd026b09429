package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-match-agent/internal/types"
)

// maxRequestBytes caps the request body size.
const maxRequestBytes = 1 << 20

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// The runner never returns an error; failures arrive as a fallback
	// report, so the HTTP status is 200 either way.
	report := s.runner.Run(r.Context(), req.ResumeText, req.JobQuery)
	jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
