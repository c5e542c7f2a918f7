package ranking

import (
	"testing"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularityTrendScore(t *testing.T) {
	job := types.JobCandidate{ViewCount: 40, ApplicationCount: 8, SaveCount: 100}
	assert.Equal(t, 56.0, PopularityTrendScore(&job))
}

func TestVelocityAndEngagementTrendScore(t *testing.T) {
	job := types.JobCandidate{ViewCount: 40, ApplicationCount: 8, SaveCount: 4, CreatedAt: daysAgo(4)}

	v := Velocity(&job, testNow)
	assert.InDelta(t, 10.0, v.ViewsPerDay, 0.0001)
	assert.InDelta(t, 2.0, v.ApplicationsPerDay, 0.0001)
	assert.InDelta(t, 1.0, v.SavesPerDay, 0.0001)
	assert.InDelta(t, 4.2, EngagementTrendScore(v), 0.0001)
}

func TestVelocity_YoungJobCountsAsOneDay(t *testing.T) {
	job := types.JobCandidate{ViewCount: 12, CreatedAt: daysAgo(0.25)}
	assert.InDelta(t, 12.0, Velocity(&job, testNow).ViewsPerDay, 0.0001)
}

func TestEngagementTrending_AnnotatesVelocity(t *testing.T) {
	jobs := []types.JobCandidate{{Title: "A", ViewCount: 10, CreatedAt: daysAgo(2)}}

	trending := EngagementTrending(jobs, testNow)
	require.Len(t, trending, 1)
	require.NotNil(t, trending[0].Velocity)
	assert.InDelta(t, 5.0, trending[0].Velocity.ViewsPerDay, 0.0001)
	assert.InDelta(t, 1.5, trending[0].TrendScore, 0.0001)
	assert.Equal(t, SourceEngagement, trending[0].Source)
}

func TestMergeTrending(t *testing.T) {
	primary := PopularityTrending([]types.JobCandidate{
		{Title: "Go Dev", Company: "Acme"},
		{Title: "SRE", Company: "Initech"},
	})
	secondary := EngagementTrending([]types.JobCandidate{
		{Title: "go dev", Company: "ACME", CreatedAt: daysAgo(1)},
		{Title: "Data Analyst", Company: "Globex", CreatedAt: daysAgo(1)},
		{Title: "Designer", Company: "Hooli", CreatedAt: daysAgo(1)},
	}, testNow)

	merged := MergeTrending(primary, secondary, 3)
	require.Len(t, merged, 3)
	assert.Equal(t, "Go Dev", merged[0].Title)
	assert.Equal(t, SourcePopularity, merged[0].Source)
	assert.Equal(t, "SRE", merged[1].Title)
	assert.Equal(t, "Data Analyst", merged[2].Title)
	assert.Equal(t, SourceEngagement, merged[2].Source)
}

func TestMergeTrending_NonPositiveLimit(t *testing.T) {
	merged := MergeTrending(PopularityTrending([]types.JobCandidate{{Title: "A"}}), nil, 0)
	assert.Empty(t, merged)
}
