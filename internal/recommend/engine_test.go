package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return testNow.Add(-time.Duration(d) * 24 * time.Hour)
}

func newTestEngine(c corpus.Corpus, logger *zap.Logger) *Engine {
	return NewEngine(c, logger).WithClock(func() time.Time { return testNow })
}

func reactProfile() *types.UserProfile {
	return &types.UserProfile{
		Skills:                  []string{"React", "JavaScript"},
		Location:                "Austin, TX",
		InferredExperienceLevel: types.ExperienceMid,
		Preferences: types.Preferences{
			Industries: []string{"Software"},
			JobTypes:   []string{types.JobTypeFullTime},
		},
	}
}

func reactJob() types.JobCandidate {
	return types.JobCandidate{
		ID:         uuid.New(),
		Title:      "React Frontend Developer",
		Company:    "Initech",
		Location:   "Austin, TX",
		Skills:     []string{"React", "JavaScript", "TypeScript"},
		Industry:   "Software",
		Experience: types.ExperienceMid,
		JobType:    types.JobTypeFullTime,
		Salary:     types.Salary{Min: 85000},
		Status:     types.JobStatusActive,
		CreatedAt:  daysAgo(20),
	}
}

// unrelatedJobs returns n active jobs that share nothing with reactProfile.
func unrelatedJobs(n int) []types.JobCandidate {
	jobs := make([]types.JobCandidate, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, types.JobCandidate{
			ID:         uuid.New(),
			Title:      fmt.Sprintf("Registered Nurse %d", i),
			Company:    "Mercy General",
			Location:   "Boston, MA",
			Skills:     []string{"Patient Care"},
			Industry:   "Healthcare",
			Experience: types.ExperienceExecutive,
			JobType:    types.JobTypePartTime,
			Status:     types.JobStatusActive,
			ViewCount:  i,
			CreatedAt:  daysAgo(60 + i),
		})
	}
	return jobs
}

// mixedJobs returns n active jobs spread over every strategy's criteria.
func mixedJobs(n int) []types.JobCandidate {
	skillSets := [][]string{{"React"}, {"JavaScript", "React"}, {"Go"}, {"Python"}}
	industries := []string{"Software", "Finance", "Healthcare"}
	locations := []string{"Austin, TX", "Remote", "Denver, CO"}

	jobs := make([]types.JobCandidate, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, types.JobCandidate{
			ID:         uuid.New(),
			Title:      fmt.Sprintf("Job %d", i),
			Company:    fmt.Sprintf("Company %d", i%7),
			Location:   locations[i%len(locations)],
			Skills:     skillSets[i%len(skillSets)],
			Industry:   industries[i%len(industries)],
			Experience: types.ExperienceLevels[i%len(types.ExperienceLevels)],
			JobType:    types.JobTypeFullTime,
			Status:     types.JobStatusActive,
			ViewCount:  (i * 7) % 60,
			CreatedAt:  daysAgo(i % 45),
		})
	}
	return jobs
}

// recordingCorpus records every filter it serves.
type recordingCorpus struct {
	corpus.Corpus

	mu      sync.Mutex
	filters []corpus.Filter
}

func (r *recordingCorpus) FindJobs(ctx context.Context, f corpus.Filter) (*corpus.Result, error) {
	r.mu.Lock()
	r.filters = append(r.filters, f)
	r.mu.Unlock()
	return r.Corpus.FindJobs(ctx, f)
}

// failingCorpus fails every query, or only queries with sort key failOn when set.
type failingCorpus struct {
	corpus.Corpus
	failOn corpus.SortKey
}

func (f *failingCorpus) FindJobs(ctx context.Context, filter corpus.Filter) (*corpus.Result, error) {
	if f.Corpus == nil || filter.Sort == f.failOn {
		return nil, errors.New("corpus unavailable")
	}
	return f.Corpus.FindJobs(ctx, filter)
}

type panickingCorpus struct{}

func (panickingCorpus) FindJobs(context.Context, corpus.Filter) (*corpus.Result, error) {
	panic("boom")
}

func TestRecommend_EndToEndScenario(t *testing.T) {
	target := reactJob()
	jobs := append(unrelatedJobs(9), target)
	engine := newTestEngine(corpus.NewMemory(jobs), nil)

	recs := engine.Recommend(context.Background(), reactProfile(), DefaultOptions())

	require.Len(t, recs, 10)
	first := recs[0]
	assert.Equal(t, target.ID, first.ID)
	assert.GreaterOrEqual(t, first.RecommendationScore, 85)
	assert.Equal(t, 1, first.RecommendationRank)
	assert.Equal(t, StrategyExactMatch, first.Source)
	assert.False(t, first.IsAIGenerated)
	assert.Equal(t, []string{
		"2 of your skills match this role",
		"Perfect experience level match",
		"Industry matches your preferences",
		"Location matches your area",
		"Job type matches your preference",
	}, first.MatchingReasons)
}

func TestRecommend_CountUniquenessAndRanks(t *testing.T) {
	engine := newTestEngine(corpus.NewMemory(mixedJobs(40)), nil)
	profiles := map[string]*types.UserProfile{
		"full profile":  reactProfile(),
		"empty profile": {},
		"remote seeker": {Preferences: types.Preferences{RemoteWork: true}},
	}

	for name, profile := range profiles {
		for _, limit := range []int{1, 5, 20, 39, 40, 100} {
			t.Run(fmt.Sprintf("%s limit %d", name, limit), func(t *testing.T) {
				recs := engine.Recommend(context.Background(), profile, Options{Limit: limit})

				assert.LessOrEqual(t, len(recs), limit)
				assert.Equal(t, min(limit, 40), len(recs), "corpus is large enough to fill the limit")

				ids := make(map[uuid.UUID]bool, len(recs))
				for i, rec := range recs {
					assert.False(t, ids[rec.ID], "duplicate job %s", rec.ID)
					ids[rec.ID] = true
					assert.Equal(t, i+1, rec.RecommendationRank)
					assert.GreaterOrEqual(t, rec.RecommendationScore, 10)
					assert.LessOrEqual(t, rec.RecommendationScore, 100)
					if i > 0 {
						assert.GreaterOrEqual(t, recs[i-1].RecommendationScore, rec.RecommendationScore)
					}
				}
			})
		}
	}
}

func TestRecommend_DefaultLimit(t *testing.T) {
	engine := newTestEngine(corpus.NewMemory(mixedJobs(30)), nil)

	recs := engine.Recommend(context.Background(), reactProfile(), Options{})
	assert.Len(t, recs, DefaultLimit)
}

func TestRecommend_FailingCorpus(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := newTestEngine(&failingCorpus{}, zap.New(core))

	var recs []types.ScoredRecommendation
	require.NotPanics(t, func() {
		recs = engine.Recommend(context.Background(), reactProfile(), DefaultOptions())
	})

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	failed := logs.FilterMessage("recommendation strategy failed")
	assert.Equal(t, 6, failed.Len())
	assert.Equal(t, StrategyExactMatch, failed.All()[0].ContextMap()["strategy"])
	assert.Equal(t, StrategyPopular, failed.All()[5].ContextMap()["strategy"])
}

func TestRecommend_PanickingCorpus(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := newTestEngine(panickingCorpus{}, zap.New(core))

	recs := engine.Recommend(context.Background(), &types.UserProfile{}, DefaultOptions())

	assert.Empty(t, recs)
	// Only location and popular run for an empty profile.
	assert.Equal(t, 2, logs.FilterMessage("recommendation strategy failed").Len())
}

func TestRecommend_OneStrategyFails(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	target := reactJob()
	c := &failingCorpus{Corpus: corpus.NewMemory(append(unrelatedJobs(3), target)), failOn: corpus.SortNewestThenViews}
	engine := newTestEngine(c, zap.New(core))

	recs := engine.Recommend(context.Background(), reactProfile(), DefaultOptions())

	require.Len(t, recs, 4)
	assert.Equal(t, target.ID, recs[0].ID)
	assert.Equal(t, StrategySkills, recs[0].Source)
	assert.Equal(t, 1, logs.FilterMessage("recommendation strategy failed").Len())
}

func TestRecommend_ExcludeApplied(t *testing.T) {
	target := reactJob()
	engine := newTestEngine(corpus.NewMemory(append(unrelatedJobs(4), target)), nil)
	profile := reactProfile()
	profile.AppliedJobIDs = []uuid.UUID{target.ID}

	recs := engine.Recommend(context.Background(), profile, DefaultOptions())
	require.Len(t, recs, 4)
	for _, rec := range recs {
		assert.NotEqual(t, target.ID, rec.ID)
	}

	recs = engine.Recommend(context.Background(), profile, Options{Limit: 20, ExcludeApplied: false})
	require.Len(t, recs, 5)
	assert.Equal(t, target.ID, recs[0].ID)
}

func TestRecommend_StrategyFilters(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(nil)}
	engine := newTestEngine(rec, nil)

	recs := engine.Recommend(context.Background(), reactProfile(), DefaultOptions())
	assert.Empty(t, recs)

	require.Len(t, rec.filters, 6)

	exact := rec.filters[0]
	assert.Equal(t, corpus.SortNewestThenViews, exact.Sort)
	assert.Equal(t, 10, exact.Limit)
	assert.Equal(t, []string{"React", "JavaScript"}, exact.SkillsAny)
	assert.Equal(t, []string{"Software"}, exact.Industries)
	assert.Equal(t, []string{types.ExperienceMid}, exact.Experiences)

	bySkills := rec.filters[1]
	assert.Equal(t, corpus.SortNewest, bySkills.Sort)
	assert.Equal(t, 40, bySkills.Limit)

	byIndustry := rec.filters[2]
	assert.Equal(t, corpus.SortMostViewed, byIndustry.Sort)
	assert.Equal(t, 20, byIndustry.Limit)

	byExperience := rec.filters[3]
	assert.Equal(t, []string{types.ExperienceEntry, types.ExperienceMid, types.ExperienceSenior}, byExperience.Experiences)

	byLocation := rec.filters[4]
	require.NotNil(t, byLocation.Location)
	assert.Equal(t, []string{"Austin, TX"}, byLocation.Location.Patterns)
	assert.False(t, byLocation.Location.IncludeRemote)
	assert.False(t, byLocation.RemoteOnly)

	assert.Equal(t, corpus.SortPopular, rec.filters[5].Sort)
}

func TestRecommend_EmptyProfileSkipsStrategies(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(nil)}
	engine := newTestEngine(rec, nil)

	engine.Recommend(context.Background(), nil, DefaultOptions())

	require.Len(t, rec.filters, 2)
	assert.True(t, rec.filters[0].RemoteOnly)
	assert.Nil(t, rec.filters[0].Location)
	assert.Equal(t, corpus.SortPopular, rec.filters[1].Sort)
}

func TestRecommend_ExclusionGrowsAlongChain(t *testing.T) {
	target := reactJob()
	rec := &recordingCorpus{Corpus: corpus.NewMemory([]types.JobCandidate{target})}
	engine := newTestEngine(rec, nil)

	engine.Recommend(context.Background(), reactProfile(), DefaultOptions())

	require.Len(t, rec.filters, 6)
	assert.Empty(t, rec.filters[0].ExcludeIDs)
	for _, f := range rec.filters[1:] {
		assert.Equal(t, []uuid.UUID{target.ID}, f.ExcludeIDs)
	}
}

func TestRecommend_CanceledContext(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(mixedJobs(10))}
	engine := newTestEngine(rec, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := engine.Recommend(ctx, reactProfile(), DefaultOptions())

	assert.Empty(t, recs)
	assert.Empty(t, rec.filters)
}

func TestRecommend_InfersExperienceFromHistory(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(nil)}
	engine := newTestEngine(rec, nil)
	profile := &types.UserProfile{
		WorkHistory: []types.WorkPeriod{{StartDate: testNow.AddDate(-5, 0, 0), Current: true}},
	}

	engine.Recommend(context.Background(), profile, DefaultOptions())

	require.NotEmpty(t, rec.filters)
	assert.Equal(t, []string{types.ExperienceSenior}, rec.filters[0].Experiences)
}
