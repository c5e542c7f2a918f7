package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
)

// GetJob returns the job with id, or corpus.ErrJobNotFound.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*types.JobCandidate, error) {
	getter, ok := s.corpus.(corpus.JobGetter)
	if !ok {
		return nil, ErrUnsupported
	}
	job, err := getter.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	if job == nil {
		return nil, corpus.ErrJobNotFound
	}
	return job, nil
}

// RecordInteraction counts a user action on a job.
func (s *Service) RecordInteraction(ctx context.Context, id uuid.UUID, action types.Interaction) error {
	if action.CounterColumn() == "" {
		return &corpus.UnknownInteractionError{Action: string(action)}
	}
	recorder, ok := s.corpus.(corpus.InteractionRecorder)
	if !ok {
		return ErrUnsupported
	}
	return recorder.RecordInteraction(ctx, id, action)
}

// CountActive reports the number of active jobs; ok is false when the corpus
// cannot count.
func (s *Service) CountActive(ctx context.Context) (n int, ok bool, err error) {
	checker, ok := s.corpus.(corpus.HealthChecker)
	if !ok {
		return 0, false, nil
	}
	n, err = checker.CountActive(ctx)
	if err != nil {
		return 0, true, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return n, true, nil
}
