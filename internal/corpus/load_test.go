package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJobs = `
jobs:
  - id: 6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f
    title: Platform Engineer
    company: Hooli
    location: Remote
    skills: [golang, k8s, golang]
    industry: Software
    experience: Senior
    jobType: Full-time
    salary:
      min: 150000
    isRemote: true
    createdAt: 2026-02-20T10:00:00Z
    viewCount: 12
  - title: Junior Designer
    company: Pied Piper
    location: New York, NY
    skills: [figma]
    status: closed
`

func TestDecodeJobs(t *testing.T) {
	jobs, err := DecodeJobs([]byte(sampleJobs), fixtureNow)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, uuid.MustParse("6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f"), first.ID)
	assert.Equal(t, []string{"Go", "Kubernetes"}, first.Skills)
	assert.Equal(t, 150000, first.Salary.Min)
	assert.True(t, first.IsRemote)
	assert.Equal(t, types.JobStatusActive, first.Status)
	assert.Equal(t, 12, first.ViewCount)
	assert.Equal(t, 2026, first.CreatedAt.Year())

	second := jobs[1]
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.Equal(t, types.JobStatusClosed, second.Status)
	assert.Equal(t, fixtureNow, second.CreatedAt)
	assert.Equal(t, []string{"Figma"}, second.Skills)
}

func TestDecodeJobs_RequiresTitle(t *testing.T) {
	_, err := DecodeJobs([]byte("jobs:\n  - company: Acme\n"), fixtureNow)
	assert.ErrorContains(t, err, "title is required")
}

func TestLoadJobsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jobs":[{"title":"Analyst","skills":["sql"]}]}`), 0o644))

	jobs, err := LoadJobsFile(path, fixtureNow)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, []string{"SQL"}, jobs[0].Skills)

	_, err = LoadJobsFile(filepath.Join(t.TempDir(), "missing.yaml"), fixtureNow)
	assert.ErrorContains(t, err, "failed to read jobs file")
}
