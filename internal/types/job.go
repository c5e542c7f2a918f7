package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job status values. Only active jobs are ever served by a corpus.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// WorkArrangementRemote marks a job whose work arrangement is fully remote.
const WorkArrangementRemote = "Remote"

// Salary is the advertised salary band of a job.
type Salary struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max,omitempty" yaml:"max,omitempty"`
}

// JobCandidate is a read-only projection of a job posting from the corpus.
type JobCandidate struct {
	ID               uuid.UUID `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	Company          string    `json:"company" yaml:"company"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	Location         string    `json:"location" yaml:"location"`
	Skills           []string  `json:"skills" yaml:"skills"`
	Industry         string    `json:"industry" yaml:"industry"`
	Experience       string    `json:"experience" yaml:"experience"`
	JobType          string    `json:"jobType" yaml:"jobType"`
	Salary           Salary    `json:"salary" yaml:"salary"`
	IsRemote         bool      `json:"isRemote" yaml:"isRemote"`
	WorkArrangement  string    `json:"workArrangement,omitempty" yaml:"workArrangement,omitempty"`
	CompanySize      string    `json:"companySize,omitempty" yaml:"companySize,omitempty"`
	Status           string    `json:"status" yaml:"status"`
	ViewCount        int       `json:"viewCount" yaml:"viewCount"`
	ApplicationCount int       `json:"applicationCount" yaml:"applicationCount"`
	SaveCount        int       `json:"saveCount" yaml:"saveCount"`
	ClickCount       int       `json:"clickCount" yaml:"clickCount"`
	CreatedAt        time.Time `json:"createdAt" yaml:"createdAt"`
}

// Remote reports whether the job can be done remotely, by flag, arrangement or location text.
func (j *JobCandidate) Remote() bool {
	return j.IsRemote ||
		j.WorkArrangement == WorkArrangementRemote ||
		strings.Contains(strings.ToLower(j.Location), "remote")
}

// Engagement is the weighted engagement total used for popularity bonuses.
func (j *JobCandidate) Engagement() int {
	return j.ViewCount + 2*j.ApplicationCount + j.SaveCount
}

// AgeDays returns the age of the posting in fractional days relative to now.
func (j *JobCandidate) AgeDays(now time.Time) float64 {
	return now.Sub(j.CreatedAt).Hours() / 24
}

// Interaction is a tracked user action on a job.
type Interaction string

// Tracked interactions and the counters they increment.
const (
	InteractionViewed  Interaction = "viewed"
	InteractionClicked Interaction = "clicked"
	InteractionSaved   Interaction = "saved"
	InteractionApplied Interaction = "applied"
)

// CounterColumn returns the engagement counter an interaction increments, or "" when unknown.
func (i Interaction) CounterColumn() string {
	switch i {
	case InteractionViewed:
		return "view_count"
	case InteractionClicked:
		return "click_count"
	case InteractionSaved:
		return "save_count"
	case InteractionApplied:
		return "application_count"
	default:
		return ""
	}
}
