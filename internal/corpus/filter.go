package corpus

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
)

// SortKey selects the ordering of a query. Every key orders descending.
type SortKey string

// Supported sort keys.
const (
	SortNewest          SortKey = "newest"            // created_at
	SortNewestThenViews SortKey = "newest_then_views" // created_at, views
	SortMostViewed      SortKey = "most_viewed"       // views, created_at
	SortPopular         SortKey = "popular"           // views, applications, saves, created_at
	SortTrending        SortKey = "trending"          // views, applications, created_at
)

// LocationFilter matches a job whose location contains any pattern, or, with
// IncludeRemote, any remote job. An empty LocationFilter matches everything.
type LocationFilter struct {
	Patterns      []string
	IncludeRemote bool
}

func (l *LocationFilter) empty() bool {
	return l == nil || (len(l.Patterns) == 0 && !l.IncludeRemote)
}

// Filter is a structured corpus query. Zero-valued fields do not constrain.
// String matching is case-insensitive except for the category memberships.
type Filter struct {
	JobTypes    []string
	Experiences []string
	Industries  []string

	// SkillsAny matches a job with a skill containing any of these.
	SkillsAny []string
	// Terms matches a job whose title, description, company or skills contain any term.
	Terms []string

	Location   *LocationFilter
	RemoteOnly bool

	// SalaryMin and SalaryMax bound the advertised minimum salary.
	SalaryMin *int
	SalaryMax *int

	CreatedAfter *time.Time
	ExcludeIDs   []uuid.UUID

	Sort   SortKey
	Limit  int // 0 means no limit
	Offset int
}

// Matches reports whether an active job satisfies every constraint of f.
func (f *Filter) Matches(job *types.JobCandidate) bool {
	if job.Status != types.JobStatusActive {
		return false
	}
	if len(f.JobTypes) > 0 && !slices.Contains(f.JobTypes, job.JobType) {
		return false
	}
	if len(f.Experiences) > 0 && !slices.Contains(f.Experiences, job.Experience) {
		return false
	}
	if len(f.Industries) > 0 && !slices.Contains(f.Industries, job.Industry) {
		return false
	}
	if len(f.SkillsAny) > 0 && !anySkillContains(job.Skills, f.SkillsAny) {
		return false
	}
	if len(f.Terms) > 0 && !matchesTerms(job, f.Terms) {
		return false
	}
	if !f.Location.empty() && !f.Location.matches(job) {
		return false
	}
	if f.RemoteOnly && !job.Remote() {
		return false
	}
	if f.SalaryMin != nil && job.Salary.Min < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && job.Salary.Min > *f.SalaryMax {
		return false
	}
	if f.CreatedAfter != nil && job.CreatedAt.Before(*f.CreatedAfter) {
		return false
	}
	if slices.Contains(f.ExcludeIDs, job.ID) {
		return false
	}
	return true
}

func (l *LocationFilter) matches(job *types.JobCandidate) bool {
	if l.IncludeRemote && job.Remote() {
		return true
	}
	location := strings.ToLower(job.Location)
	for _, p := range l.Patterns {
		if p != "" && strings.Contains(location, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func anySkillContains(jobSkills, patterns []string) bool {
	for _, s := range jobSkills {
		skill := strings.ToLower(s)
		for _, p := range patterns {
			if p != "" && strings.Contains(skill, strings.ToLower(p)) {
				return true
			}
		}
	}
	return false
}

func matchesTerms(job *types.JobCandidate, terms []string) bool {
	fields := []string{
		strings.ToLower(job.Title),
		strings.ToLower(job.Description),
		strings.ToLower(job.Company),
	}
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		for _, field := range fields {
			if strings.Contains(field, t) {
				return true
			}
		}
		if anySkillContains(job.Skills, []string{t}) {
			return true
		}
	}
	return false
}

// less reports whether a sorts before b under key.
func (key SortKey) less(a, b *types.JobCandidate) bool {
	byCounts := func(counts ...[2]int) (bool, bool) {
		for _, c := range counts {
			if c[0] != c[1] {
				return c[0] > c[1], true
			}
		}
		return false, false
	}
	newer := a.CreatedAt.After(b.CreatedAt)

	switch key {
	case SortNewestThenViews:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return newer
		}
		return a.ViewCount > b.ViewCount
	case SortMostViewed:
		if r, ok := byCounts([2]int{a.ViewCount, b.ViewCount}); ok {
			return r
		}
		return newer
	case SortPopular:
		if r, ok := byCounts(
			[2]int{a.ViewCount, b.ViewCount},
			[2]int{a.ApplicationCount, b.ApplicationCount},
			[2]int{a.SaveCount, b.SaveCount},
		); ok {
			return r
		}
		return newer
	case SortTrending:
		if r, ok := byCounts(
			[2]int{a.ViewCount, b.ViewCount},
			[2]int{a.ApplicationCount, b.ApplicationCount},
		); ok {
			return r
		}
		return newer
	default:
		return newer
	}
}

// IntPtr returns a pointer to v, for SalaryMin and SalaryMax.
func IntPtr(v int) *int {
	return &v
}
