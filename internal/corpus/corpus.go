// Package corpus defines the job corpus query contract and an in-memory
// implementation of it.
package corpus

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
)

// ErrJobNotFound is returned when an operation targets a job that does not exist.
var ErrJobNotFound = errors.New("job not found")

// Result is one page of jobs matching a Filter.
type Result struct {
	Jobs []types.JobCandidate
	// Total counts every match, ignoring Limit and Offset.
	Total int
	// FullText is set when a full-text index served the Terms filter.
	FullText bool
}

// Corpus answers structured job queries. Only active jobs are ever returned.
type Corpus interface {
	FindJobs(ctx context.Context, f Filter) (*Result, error)
}

// JobGetter fetches a single job. It returns nil, nil when the job does not exist.
type JobGetter interface {
	GetJob(ctx context.Context, id uuid.UUID) (*types.JobCandidate, error)
}

// InteractionRecorder increments the engagement counter for an interaction.
// It returns ErrJobNotFound when the job does not exist.
type InteractionRecorder interface {
	RecordInteraction(ctx context.Context, id uuid.UUID, action types.Interaction) error
}

// JobWriter inserts jobs, replacing any job with the same ID.
type JobWriter interface {
	InsertJobs(ctx context.Context, jobs []types.JobCandidate) (int, error)
}

// HealthChecker reports the number of active jobs.
type HealthChecker interface {
	CountActive(ctx context.Context) (int, error)
}

// Store is the full set of capabilities a storage backend provides.
type Store interface {
	Corpus
	JobGetter
	InteractionRecorder
	JobWriter
	HealthChecker
}
