package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// decodeRecommendRequest schema-validates the profile before decoding the
// request into typed form.
func decodeRecommendRequest(body []byte) (*types.RecommendRequest, error) {
	var raw struct {
		Profile json.RawMessage `json:"profile"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if len(bytes.TrimSpace(raw.Profile)) == 0 || bytes.Equal(bytes.TrimSpace(raw.Profile), []byte("null")) {
		return nil, &ErrValidation{Field: "profile", Message: "is required"}
	}
	if err := schemas.ValidateUserProfile(raw.Profile); err != nil {
		return nil, err
	}

	var req types.RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.failRequest(w, r, &ErrValidation{Field: "body", Message: "unreadable"})
		return
	}
	req, err := decodeRecommendRequest(body)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	opts := recommend.DefaultOptions()
	opts.Limit = s.cfg.RecommendDefaultLimit
	if req.Limit > 0 {
		opts.Limit = min(req.Limit, s.cfg.RecommendMaxLimit)
	}
	if req.ExcludeApplied != nil {
		opts.ExcludeApplied = *req.ExcludeApplied
	}

	recs := s.engine.Recommend(r.Context(), &req.Profile, opts)
	s.logger.Debug("recommendations served",
		zap.String(logger.FieldRequest, middleware.RequestIDFrom(r.Context())),
		zap.Int("count", len(recs)),
	)
	s.jsonResponse(w, http.StatusOK, types.RecommendResponse{Count: len(recs), Data: recs})
}

func (s *Server) handlePredictSalary(w http.ResponseWriter, r *http.Request) {
	var req types.SalaryPredictionRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.failRequest(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	prediction, err := s.search.PredictSalary(&req)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, prediction)
}
