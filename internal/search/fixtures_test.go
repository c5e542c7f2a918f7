package search

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return testNow.Add(-time.Duration(d) * 24 * time.Hour)
}

var (
	idFrontend = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	idReact    = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	idOnsite   = uuid.MustParse("00000000-0000-0000-0000-0000000000a3")
	idJunior   = uuid.MustParse("00000000-0000-0000-0000-0000000000a4")
	idNurse    = uuid.MustParse("00000000-0000-0000-0000-0000000000a5")
)

func fixtureJobs() []types.JobCandidate {
	return []types.JobCandidate{
		{
			ID: idFrontend, Title: "Senior Frontend Engineer", Company: "Initech", Location: "Remote",
			Skills: []string{"React", "JavaScript"}, Industry: "Software", Experience: types.ExperienceSenior,
			JobType: types.JobTypeFullTime, IsRemote: true, Salary: types.Salary{Min: 120000},
			Status: types.JobStatusActive, ViewCount: 30, ApplicationCount: 2, CreatedAt: daysAgo(2),
		},
		{
			ID: idReact, Title: "React Developer", Company: "Hooli", Location: "Austin, TX (Remote)",
			Skills: []string{"React"}, Industry: "Software", Experience: types.ExperienceSenior,
			JobType: types.JobTypeRemote, IsRemote: true, Salary: types.Salary{Min: 110000},
			Status: types.JobStatusActive, ViewCount: 80, ApplicationCount: 10, CreatedAt: daysAgo(5),
		},
		{
			ID: idOnsite, Title: "Senior React Engineer", Company: "Globex", Location: "Boston, MA",
			Skills: []string{"React", "Redux"}, Industry: "Software", Experience: types.ExperienceSenior,
			JobType: types.JobTypeFullTime, Salary: types.Salary{Min: 130000},
			Status: types.JobStatusActive, ViewCount: 5, CreatedAt: daysAgo(1),
		},
		{
			ID: idJunior, Title: "Junior Frontend Developer", Company: "Initech", Location: "Remote",
			Skills: []string{"Vue"}, Industry: "Software", Experience: types.ExperienceEntry,
			JobType: types.JobTypeFullTime, IsRemote: true, Salary: types.Salary{Min: 60000},
			Status: types.JobStatusActive, ViewCount: 3, CreatedAt: daysAgo(3),
		},
		{
			ID: idNurse, Title: "Nurse Practitioner", Company: "Mercy General", Location: "Boston, MA",
			Skills: []string{"Patient Care"}, Industry: "Healthcare", Experience: types.ExperienceSenior,
			JobType: types.JobTypePartTime, Salary: types.Salary{Min: 95000},
			Status: types.JobStatusActive, ViewCount: 60, ApplicationCount: 5, CreatedAt: daysAgo(20),
		},
	}
}

func newTestService(c corpus.Corpus, logger *zap.Logger) *Service {
	return NewService(c, nil, logger).WithClock(func() time.Time { return testNow })
}

func fixtureService() *Service {
	return newTestService(corpus.NewMemory(fixtureJobs()), nil)
}

// findOnly hides every optional capability of the wrapped corpus.
type findOnly struct {
	c corpus.Corpus
}

func (f findOnly) FindJobs(ctx context.Context, filter corpus.Filter) (*corpus.Result, error) {
	return f.c.FindJobs(ctx, filter)
}

// sortFailing fails queries using any of the listed sort keys.
type sortFailing struct {
	corpus.Corpus
	keys []corpus.SortKey
}

func (s sortFailing) FindJobs(ctx context.Context, f corpus.Filter) (*corpus.Result, error) {
	for _, k := range s.keys {
		if f.Sort == k {
			return nil, errors.New("corpus unavailable")
		}
	}
	return s.Corpus.FindJobs(ctx, f)
}

func ids(results []types.SearchResult) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}
