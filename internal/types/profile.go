package types

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Preferences are the job-seeker's stated preferences.
type Preferences struct {
	Industries         []string     `json:"industries,omitempty" mapstructure:"industries"`
	JobTypes           []string     `json:"jobTypes,omitempty" mapstructure:"jobTypes" validate:"omitempty,dive,oneof=Full-time Part-time Contract Internship Remote"`
	PreferredLocations []string     `json:"preferredLocations,omitempty" mapstructure:"preferredLocations"`
	SalaryRange        *SalaryRange `json:"salaryRange,omitempty" mapstructure:"salaryRange"`
	RemoteWork         bool         `json:"remoteWork,omitempty" mapstructure:"remoteWork"`
	CompanySize        []string     `json:"companySize,omitempty" mapstructure:"companySize"`
}

// WorkPeriod is one entry of a user's work history.
type WorkPeriod struct {
	Title     string     `json:"title,omitempty" mapstructure:"title"`
	Company   string     `json:"company,omitempty" mapstructure:"company"`
	StartDate time.Time  `json:"startDate" mapstructure:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate,omitempty" mapstructure:"endDate"`
	Current   bool       `json:"current,omitempty" mapstructure:"current"`
}

// UserProfile is the read-only view of a job seeker consumed by the recommendation engine.
type UserProfile struct {
	ID                      string       `json:"id,omitempty" mapstructure:"id"`
	Skills                  []string     `json:"skills" mapstructure:"skills" validate:"omitempty,dive,required"`
	Location                string       `json:"location,omitempty" mapstructure:"location"`
	InferredExperienceLevel string       `json:"inferredExperienceLevel,omitempty" mapstructure:"inferredExperienceLevel" validate:"omitempty,oneof=Entry-level Mid-level Senior Executive"`
	Preferences             Preferences  `json:"preferences" mapstructure:"preferences"`
	WorkHistory             []WorkPeriod `json:"workHistory,omitempty" mapstructure:"workHistory" validate:"omitempty,dive"`
	AppliedJobIDs           []uuid.UUID  `json:"appliedJobIds,omitempty" mapstructure:"appliedJobIds"`
}

// Validate validates the UserProfile using the validator.
func (u *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// EffectiveExperienceLevel returns the explicit level, or one inferred from work history.
// It returns "" when neither is available.
func (u *UserProfile) EffectiveExperienceLevel(now time.Time) string {
	if u.InferredExperienceLevel != "" {
		return u.InferredExperienceLevel
	}
	if len(u.WorkHistory) == 0 {
		return ""
	}
	return InferExperienceLevel(TotalExperienceYears(u.WorkHistory, now))
}

// TotalExperienceYears sums the duration of all work periods in years, rounded to one decimal.
// Current periods, and periods without an end date, run until now.
func TotalExperienceYears(history []WorkPeriod, now time.Time) float64 {
	const hoursPerYear = 24 * 365
	total := 0.0
	for _, p := range history {
		end := now
		if !p.Current && p.EndDate != nil {
			end = *p.EndDate
		}
		years := end.Sub(p.StartDate).Hours() / hoursPerYear
		if years > 0 {
			total += years
		}
	}
	return math.Round(total*10) / 10
}

// InferExperienceLevel maps years of experience onto the experience scale.
func InferExperienceLevel(years float64) string {
	switch {
	case years < 1:
		return ExperienceEntry
	case years < 3:
		return ExperienceMid
	case years < 8:
		return ExperienceSenior
	default:
		return ExperienceExecutive
	}
}

// RecommendRequest is the body of a recommendation request.
type RecommendRequest struct {
	Profile        UserProfile `json:"profile" mapstructure:"profile"`
	Limit          int         `json:"limit,omitempty" mapstructure:"limit" validate:"omitempty,min=1,max=100"`
	ExcludeApplied *bool       `json:"excludeApplied,omitempty" mapstructure:"excludeApplied"`
}

// Validate validates the RecommendRequest, including the embedded profile.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
