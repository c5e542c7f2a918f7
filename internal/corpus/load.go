package corpus

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/types"
	"gopkg.in/yaml.v3"
)

type jobsFile struct {
	Jobs []types.JobCandidate `yaml:"jobs"`
}

// LoadJobsFile reads a YAML (or JSON) file with a top-level "jobs" list.
// See DecodeJobs for the defaults applied.
func LoadJobsFile(path string, now time.Time) ([]types.JobCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	jobs, err := DecodeJobs(data, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs file %s: %w", path, err)
	}
	return jobs, nil
}

// DecodeJobs parses a jobs document. Jobs without an ID get a fresh one,
// jobs without a status are active, jobs without a creation time were created
// at now, and skill names are normalized.
func DecodeJobs(data []byte, now time.Time) ([]types.JobCandidate, error) {
	var file jobsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse jobs: %w", err)
	}

	jobs := file.Jobs
	for i := range jobs {
		job := &jobs[i]
		if job.Title == "" {
			return nil, fmt.Errorf("job %d: title is required", i)
		}
		if job.ID == uuid.Nil {
			job.ID = uuid.New()
		}
		if job.Status == "" {
			job.Status = types.JobStatusActive
		}
		if job.CreatedAt.IsZero() {
			job.CreatedAt = now
		}
		job.Skills = parsing.NormalizeSkills(job.Skills)
		if job.Skills == nil {
			job.Skills = []string{}
		}
	}
	return jobs, nil
}
