// Package ranking scores job candidates: the recommendation score and its
// reasons, NL search relevance, trend scores and rule-based salary estimates.
package ranking

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Recommendation score components. Each bonus is awarded at most once.
const (
	baseScore = 50.0

	skillOverlapWeight      = 30.0
	exactExperienceBonus    = 20.0
	adjacentExperienceBonus = 10.0
	industryBonus           = 15.0
	locationBonus           = 15.0
	remoteBonus             = 10.0
	jobTypeBonus            = 10.0
	salaryBonus             = 10.0
	nearSalaryBonus         = 5.0
	companySizeBonus        = 5.0
	freshBonus              = 5.0
	recentBonus             = 3.0
	highEngagementBonus     = 5.0
	someEngagementBonus     = 3.0

	nearSalaryRatio         = 0.8
	freshDays               = 7.0
	recentDays              = 30.0
	highEngagement          = 50
	someEngagement          = 20
	popularReasonEngagement = 30

	rankPenaltyStep   = 5
	rankPenaltyPoints = 2.0
	minScore          = 10.0
	maxScore          = 100
)

// matchFactors are the profile/job comparisons shared by scoring and reasons.
type matchFactors struct {
	matchingSkills     int
	skillRatio         float64
	exactExperience    bool
	adjacentExperience bool
	industry           bool
	location           bool
	remote             bool
	jobType            bool
	salaryMet          bool
	salaryNear         bool
	companySize        bool
	ageDays            float64
	engagement         int
}

func computeMatchFactors(job *types.JobCandidate, user *types.UserProfile, now time.Time) matchFactors {
	f := matchFactors{
		ageDays:    job.AgeDays(now),
		engagement: job.Engagement(),
	}

	if len(user.Skills) > 0 && len(job.Skills) > 0 {
		f.matchingSkills = skills.CountMatching(job.Skills, user.Skills)
		f.skillRatio = skills.OverlapRatio(job.Skills, user.Skills)
	}

	if level := user.EffectiveExperienceLevel(now); level != "" {
		f.exactExperience = job.Experience == level
		f.adjacentExperience = !f.exactExperience && types.AdjacentExperience(level, job.Experience)
	}

	prefs := user.Preferences
	f.industry = job.Industry != "" && slices.Contains(prefs.Industries, job.Industry)
	f.location = user.Location != "" && strings.Contains(strings.ToLower(job.Location), strings.ToLower(user.Location))
	f.remote = job.IsRemote || job.WorkArrangement == types.WorkArrangementRemote
	f.jobType = job.JobType != "" && slices.Contains(prefs.JobTypes, job.JobType)
	f.companySize = job.CompanySize != "" && slices.Contains(prefs.CompanySize, job.CompanySize)

	if prefs.SalaryRange != nil && prefs.SalaryRange.Min > 0 && job.Salary.Min > 0 {
		want := float64(prefs.SalaryRange.Min)
		f.salaryMet = float64(job.Salary.Min) >= want
		f.salaryNear = !f.salaryMet && float64(job.Salary.Min) >= want*nearSalaryRatio
	}

	return f
}

// RecommendationScore scores job for user. position is the candidate's
// 0-based place in the merged strategy output; every fifth position costs two
// points. The result is always within [10, 100].
func RecommendationScore(job *types.JobCandidate, user *types.UserProfile, position int, now time.Time) int {
	return scoreFactors(computeMatchFactors(job, user, now), position)
}

func scoreFactors(f matchFactors, position int) int {
	score := baseScore
	score += f.skillRatio * skillOverlapWeight

	switch {
	case f.exactExperience:
		score += exactExperienceBonus
	case f.adjacentExperience:
		score += adjacentExperienceBonus
	}

	if f.industry {
		score += industryBonus
	}

	switch {
	case f.location:
		score += locationBonus
	case f.remote:
		score += remoteBonus
	}

	if f.jobType {
		score += jobTypeBonus
	}

	switch {
	case f.salaryMet:
		score += salaryBonus
	case f.salaryNear:
		score += nearSalaryBonus
	}

	if f.companySize {
		score += companySizeBonus
	}

	switch {
	case f.ageDays <= freshDays:
		score += freshBonus
	case f.ageDays <= recentDays:
		score += recentBonus
	}

	switch {
	case f.engagement > highEngagement:
		score += highEngagementBonus
	case f.engagement > someEngagement:
		score += someEngagementBonus
	}

	if position > 0 {
		score -= float64(position/rankPenaltyStep) * rankPenaltyPoints
	}
	score = math.Max(score, minScore)

	return min(int(math.Round(score)), maxScore)
}
