package corpus

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
)

// Memory is an in-process Store over a slice of jobs. It is safe for
// concurrent use.
type Memory struct {
	mu    sync.RWMutex
	jobs  []types.JobCandidate
	index map[uuid.UUID]int
}

// NewMemory creates a Memory store holding jobs.
func NewMemory(jobs []types.JobCandidate) *Memory {
	m := &Memory{index: make(map[uuid.UUID]int)}
	m.insert(jobs)
	return m
}

// FindJobs returns the active jobs matching f, sorted by f.Sort.
func (m *Memory) FindJobs(ctx context.Context, f Filter) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	matched := make([]types.JobCandidate, 0)
	for i := range m.jobs {
		if f.Matches(&m.jobs[i]) {
			matched = append(matched, cloneJob(m.jobs[i]))
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return f.Sort.less(&matched[i], &matched[j])
	})

	total := len(matched)
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[f.Offset:]
		}
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	return &Result{Jobs: matched, Total: total}, nil
}

// GetJob returns the job with id, or nil, nil when it does not exist.
func (m *Memory) GetJob(ctx context.Context, id uuid.UUID) (*types.JobCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return nil, nil
	}
	job := cloneJob(m.jobs[i])
	return &job, nil
}

// RecordInteraction increments the counter that action maps to.
func (m *Memory) RecordInteraction(ctx context.Context, id uuid.UUID, action types.Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return ErrJobNotFound
	}
	job := &m.jobs[i]
	switch action {
	case types.InteractionViewed:
		job.ViewCount++
	case types.InteractionClicked:
		job.ClickCount++
	case types.InteractionSaved:
		job.SaveCount++
	case types.InteractionApplied:
		job.ApplicationCount++
	default:
		return &UnknownInteractionError{Action: string(action)}
	}
	return nil
}

// InsertJobs adds jobs, replacing existing jobs with the same ID.
func (m *Memory) InsertJobs(ctx context.Context, jobs []types.JobCandidate) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.insert(jobs)
	return len(jobs), nil
}

// CountActive returns the number of active jobs.
func (m *Memory) CountActive(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for i := range m.jobs {
		if m.jobs[i].Status == types.JobStatusActive {
			n++
		}
	}
	return n, nil
}

func (m *Memory) insert(jobs []types.JobCandidate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, job := range jobs {
		job = cloneJob(job)
		if i, ok := m.index[job.ID]; ok {
			m.jobs[i] = job
			continue
		}
		m.index[job.ID] = len(m.jobs)
		m.jobs = append(m.jobs, job)
	}
}

// cloneJob copies the skills slice so callers cannot mutate stored jobs.
func cloneJob(job types.JobCandidate) types.JobCandidate {
	if job.Skills != nil {
		job.Skills = append([]string(nil), job.Skills...)
	}
	return job
}
