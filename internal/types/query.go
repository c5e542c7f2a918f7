// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job types recognized by the query parser and stored on job candidates.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"
)

// Experience levels, ordered from least to most senior.
const (
	ExperienceEntry     = "Entry-level"
	ExperienceMid       = "Mid-level"
	ExperienceSenior    = "Senior"
	ExperienceExecutive = "Executive"
)

// ExperienceLevels is the ordered experience scale used for adjacency checks.
var ExperienceLevels = []string{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive}

// ExperienceIndex returns the position of level on the experience scale, or -1.
func ExperienceIndex(level string) int {
	for i, l := range ExperienceLevels {
		if l == level {
			return i
		}
	}
	return -1
}

// AdjacentExperience reports whether a and b are exactly one step apart on the scale.
func AdjacentExperience(a, b string) bool {
	ia, ib := ExperienceIndex(a), ExperienceIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	d := ia - ib
	return d == 1 || d == -1
}

// SalaryRange is an extracted salary constraint. Max is nil for open-ended ranges.
type SalaryRange struct {
	Min int  `json:"min"`
	Max *int `json:"max"`
}

// ParsedQuery is the structured intent extracted from a free-text search string.
type ParsedQuery struct {
	JobType       *string      `json:"jobType"`
	Experience    *string      `json:"experience"`
	Industry      *string      `json:"industry"`
	Skills        []string     `json:"skills"`
	Location      *string      `json:"location"`
	Salary        *SalaryRange `json:"salary"`
	SearchTerms   []string     `json:"searchTerms"`
	OriginalQuery string       `json:"originalQuery"`
	Confidence    int          `json:"confidence"`
}

// HasSkill reports whether the parsed query detected the named skill family.
func (q *ParsedQuery) HasSkill(name string) bool {
	for _, s := range q.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
