package ranking

import (
	"fmt"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxReasons bounds the number of reasons attached to a recommendation. It is
// five rather than four so a job matching on skills, experience, industry,
// location and job type keeps all five of those reasons.
const MaxReasons = 5

// Reason strings, in priority order.
const (
	reasonPerfectExperience  = "Perfect experience level match"
	reasonCompatibleExp      = "Compatible experience level"
	reasonIndustry           = "Industry matches your preferences"
	reasonLocation           = "Location matches your area"
	reasonRemote             = "Remote work opportunity"
	reasonJobType            = "Job type matches your preference"
	reasonSalary             = "Salary meets your expectations"
	reasonCompanySize        = "Company size fits your preference"
	reasonRecent             = "Recently posted opportunity"
	reasonPopular            = "High-interest position"
	reasonFallback           = "Quality opportunity in your field"
	reasonRecommendedDefault = "Recommended for you"
)

// RecommendationReasons explains a recommendation with short human-readable
// strings derived from the same comparisons as RecommendationScore.
func RecommendationReasons(job *types.JobCandidate, user *types.UserProfile, now time.Time) (reasons []string) {
	defer func() {
		if r := recover(); r != nil {
			reasons = []string{reasonRecommendedDefault}
		}
	}()
	return reasonsFromFactors(job, computeMatchFactors(job, user, now))
}

func reasonsFromFactors(job *types.JobCandidate, f matchFactors) []string {
	var reasons []string

	if f.matchingSkills > 0 {
		reasons = append(reasons, fmt.Sprintf("%d of your skills match this role", f.matchingSkills))
	}

	switch {
	case f.exactExperience:
		reasons = append(reasons, reasonPerfectExperience)
	case f.adjacentExperience:
		reasons = append(reasons, reasonCompatibleExp)
	}

	if f.industry {
		reasons = append(reasons, reasonIndustry)
	}

	switch {
	case f.location:
		reasons = append(reasons, reasonLocation)
	case f.remote:
		reasons = append(reasons, reasonRemote)
	}

	if f.jobType {
		reasons = append(reasons, reasonJobType)
	}
	if f.salaryMet {
		reasons = append(reasons, reasonSalary)
	}
	if f.companySize {
		reasons = append(reasons, reasonCompanySize)
	}
	if f.ageDays <= freshDays {
		reasons = append(reasons, reasonRecent)
	}
	if job.ViewCount+2*job.ApplicationCount > popularReasonEngagement {
		reasons = append(reasons, reasonPopular)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, reasonFallback)
		if job.Company != "" {
			reasons = append(reasons, "From "+job.Company)
		}
	}

	if len(reasons) > MaxReasons {
		reasons = reasons[:MaxReasons]
	}
	return reasons
}
