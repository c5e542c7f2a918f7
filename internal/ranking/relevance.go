package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Relevance score components for natural-language search results.
const (
	relevanceSkillWeight = 40.0
	relevanceJobType     = 20.0
	relevanceExperience  = 15.0
	relevanceIndustry    = 15.0
	relevanceLocation    = 10.0
	relevanceFullText    = 10.0
)

// RelevanceScore scores job against a parsed query and returns the parsed
// skills the job matched. fullText reports whether the corpus used a
// full-text index to find the job.
func RelevanceScore(job *types.JobCandidate, parsed *types.ParsedQuery, fullText bool) (int, []string) {
	if parsed == nil {
		return 0, nil
	}

	score := 0.0
	var matched []string

	if len(parsed.Skills) > 0 && len(job.Skills) > 0 {
		matched = skills.Matching(parsed.Skills, job.Skills)
		score += float64(len(matched)) / float64(len(parsed.Skills)) * relevanceSkillWeight
	}

	if parsed.JobType != nil && job.JobType == *parsed.JobType {
		score += relevanceJobType
	}
	if parsed.Experience != nil && job.Experience == *parsed.Experience {
		score += relevanceExperience
	}
	if parsed.Industry != nil && job.Industry == *parsed.Industry {
		score += relevanceIndustry
	}
	if parsed.Location != nil && strings.Contains(strings.ToLower(job.Location), strings.ToLower(*parsed.Location)) {
		score += relevanceLocation
	}
	if fullText {
		score += relevanceFullText
	}

	return int(math.Round(score)), matched
}

// ScoreSearchResults annotates jobs with relevance and sorts them by
// descending relevance. Ties keep corpus order.
func ScoreSearchResults(jobs []types.JobCandidate, parsed *types.ParsedQuery, fullText bool) []types.SearchResult {
	results := make([]types.SearchResult, 0, len(jobs))
	for i := range jobs {
		score, matched := RelevanceScore(&jobs[i], parsed, fullText)
		results = append(results, types.SearchResult{
			JobCandidate:   jobs[i],
			RelevanceScore: score,
			MatchingSkills: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}
