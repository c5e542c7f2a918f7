package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Trending sources.
const (
	SourcePopularity = "popularity"
	SourceEngagement = "engagement"
)

// Engagement velocity weights.
const (
	viewVelocityWeight        = 0.3
	applicationVelocityWeight = 0.5
	saveVelocityWeight        = 0.2
)

// PopularityTrendScore is views plus twice the applications.
func PopularityTrendScore(job *types.JobCandidate) float64 {
	return float64(job.ViewCount + 2*job.ApplicationCount)
}

// Velocity returns per-day engagement. Jobs younger than a day count as one day old.
func Velocity(job *types.JobCandidate, now time.Time) types.EngagementVelocity {
	days := math.Max(1, job.AgeDays(now))
	return types.EngagementVelocity{
		ViewsPerDay:        float64(job.ViewCount) / days,
		ApplicationsPerDay: float64(job.ApplicationCount) / days,
		SavesPerDay:        float64(job.SaveCount) / days,
	}
}

// EngagementTrendScore is the weighted sum of per-day views, applications and saves.
func EngagementTrendScore(v types.EngagementVelocity) float64 {
	return v.ViewsPerDay*viewVelocityWeight +
		v.ApplicationsPerDay*applicationVelocityWeight +
		v.SavesPerDay*saveVelocityWeight
}

// PopularityTrending annotates jobs with their popularity trend score.
func PopularityTrending(jobs []types.JobCandidate) []types.TrendingJob {
	out := make([]types.TrendingJob, 0, len(jobs))
	for i := range jobs {
		out = append(out, types.TrendingJob{
			JobCandidate: jobs[i],
			TrendScore:   PopularityTrendScore(&jobs[i]),
			Source:       SourcePopularity,
		})
	}
	return out
}

// EngagementTrending annotates jobs with velocity and the engagement trend score.
func EngagementTrending(jobs []types.JobCandidate, now time.Time) []types.TrendingJob {
	out := make([]types.TrendingJob, 0, len(jobs))
	for i := range jobs {
		v := Velocity(&jobs[i], now)
		out = append(out, types.TrendingJob{
			JobCandidate: jobs[i],
			TrendScore:   EngagementTrendScore(v),
			Velocity:     &v,
			Source:       SourceEngagement,
		})
	}
	return out
}

// MergeTrending keeps every primary job, then fills up to limit with secondary
// jobs. Jobs are deduplicated by lower-cased "title-company".
func MergeTrending(primary, secondary []types.TrendingJob, limit int) []types.TrendingJob {
	if limit <= 0 {
		return []types.TrendingJob{}
	}
	merged := make([]types.TrendingJob, 0, limit)
	seen := make(map[string]bool)

	for _, job := range primary {
		key := trendingKey(&job.JobCandidate)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, job)
	}

	for _, job := range secondary {
		if len(merged) >= limit {
			break
		}
		key := trendingKey(&job.JobCandidate)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, job)
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func trendingKey(job *types.JobCandidate) string {
	return strings.ToLower(job.Title + "-" + job.Company)
}
