package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsights(t *testing.T) {
	got, err := fixtureService().Insights(context.Background(), InsightsFilter{Industry: "Software"})
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalJobs)
	assert.Equal(t, types.SalaryInsights{Average: 105000, Min: 60000, Max: 130000}, got.Salary)
	assert.Equal(t, []string{"Software"}, got.TopIndustries)
	assert.Equal(t, []string{"Boston, MA", "Remote", "Austin, TX (Remote)"}, got.TopLocations)
	assert.Equal(t, []string{types.JobTypeFullTime, types.JobTypeRemote}, got.PopularJobTypes)
	assert.Equal(t, testNow, got.GeneratedAt)
}

func TestInsights_Filters(t *testing.T) {
	got, err := fixtureService().Insights(context.Background(), InsightsFilter{
		Location:   "boston",
		Experience: types.ExperienceSenior,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalJobs)
	assert.Equal(t, []string{"Software", "Healthcare"}, got.TopIndustries)
	assert.Equal(t, 112500, got.Salary.Average)
}

func TestInsights_CoversEveryPage(t *testing.T) {
	n := suggestionScanLimit + 5
	jobs := make([]types.JobCandidate, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, types.JobCandidate{
			ID: uuid.New(), Title: "Courier", Industry: "Logistics",
			Salary: types.Salary{Min: 40000 + i}, Status: types.JobStatusActive,
			CreatedAt: daysAgo(i % 30),
		})
	}

	got, err := newTestService(corpus.NewMemory(jobs), nil).Insights(context.Background(), InsightsFilter{})
	require.NoError(t, err)

	assert.Equal(t, n, got.TotalJobs)
	assert.Equal(t, 40000, got.Salary.Min)
	assert.Equal(t, 40000+n-1, got.Salary.Max)
	assert.Equal(t, 40000+(n-1)/2, got.Salary.Average)
}

func TestMarketInsights_Empty(t *testing.T) {
	got := MarketInsights(nil)

	assert.Zero(t, got.TotalJobs)
	assert.Zero(t, got.Salary)
	assert.NotNil(t, got.TopIndustries)
	assert.NotNil(t, got.TopLocations)
	assert.NotNil(t, got.PopularJobTypes)
}

func TestMarketInsights_RoundsAverage(t *testing.T) {
	got := MarketInsights([]types.JobCandidate{
		{Salary: types.Salary{Min: 100001}},
		{Salary: types.Salary{Min: 100002}},
	})

	assert.Equal(t, 100002, got.Salary.Average)
	assert.Equal(t, 100001, got.Salary.Min)
	assert.Equal(t, 100002, got.Salary.Max)
	assert.Empty(t, got.TopIndustries)
}

func TestPredictSalary(t *testing.T) {
	svc := fixtureService()

	got, err := svc.PredictSalary(&types.SalaryPredictionRequest{Experience: types.ExperienceSenior})
	require.NoError(t, err)
	assert.Positive(t, got.PredictedSalary)
	assert.NotEmpty(t, got.Method)

	_, err = svc.PredictSalary(&types.SalaryPredictionRequest{Experience: "Guru"})
	assert.Error(t, err)
}
