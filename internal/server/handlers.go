package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}

	n, ok, err := s.search.CountActive(r.Context())
	switch {
	case err != nil:
		s.logger.Warn("health check failed",
			zap.String(logger.FieldRequest, middleware.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		resp["status"] = "degraded"
		s.jsonResponse(w, http.StatusServiceUnavailable, resp)
		return
	case ok:
		resp["active_jobs"] = n
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleParseQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		s.failRequest(w, r, &ErrInvalidQuery{})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.search.Parser().Parse(q))
}
