package ranking

import (
	"sort"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Candidate is a job discovered by a recommendation strategy.
type Candidate struct {
	Job    types.JobCandidate
	Source string
}

// RankRecommendations scores candidates in discovery order, sorts them by
// descending score (ties keep discovery order), truncates to limit and assigns
// 1-based ranks. Candidates must already be unique by ID.
func RankRecommendations(candidates []Candidate, user *types.UserProfile, limit int, now time.Time) []types.ScoredRecommendation {
	scored := make([]types.ScoredRecommendation, 0, len(candidates))
	for i := range candidates {
		job := &candidates[i].Job
		scored = append(scored, types.ScoredRecommendation{
			JobCandidate:        *job,
			RecommendationScore: RecommendationScore(job, user, i, now),
			MatchingReasons:     RecommendationReasons(job, user, now),
			Source:              candidates[i].Source,
			IsAIGenerated:       false,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	for i := range scored {
		scored[i].RecommendationRank = i + 1
	}
	return scored
}
