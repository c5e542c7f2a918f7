package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
)

// jobID parses the {id} path value.
func jobID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}
	return id, nil
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	job, err := s.search.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, corpus.ErrJobNotFound) {
			err = &ErrJobNotFound{ID: id}
		}
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

type interactionRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failRequest(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if req.Action == "" {
		s.failRequest(w, r, &ErrValidation{Field: "action", Message: "is required"})
		return
	}

	if err := s.search.RecordInteraction(r.Context(), id, types.Interaction(req.Action)); err != nil {
		if errors.Is(err, corpus.ErrJobNotFound) {
			err = &ErrJobNotFound{ID: id}
		}
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "recorded",
		"action": req.Action,
	})
}
