package search

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// Suggestion caps per category.
const (
	maxTitleSuggestions    = 5
	maxCompanySuggestions  = 3
	maxSkillSuggestions    = 5
	maxLocationSuggestions = 3
	maxNLSuggestions       = 8

	minSuggestionQuery = 2
	shortQueryLength   = 3
)

var (
	suggestionRoles = []string{
		"software engineer", "data scientist", "product manager", "designer", "developer",
		"marketing manager", "sales representative", "accountant", "analyst",
		"consultant", "coordinator", "specialist", "administrator",
	}
	suggestionLocations = []string{
		"New York", "San Francisco", "Los Angeles", "Chicago", "Boston",
		"Seattle", "Austin", "Denver", "Miami", "Atlanta", "remote",
	}
	suggestionExperiences = []string{"entry-level", "junior", "senior", "lead", "principal"}
	suggestionJobTypes    = []string{"full-time", "part-time", "contract", "remote", "freelance"}
	genericSuggestions    = []string{
		"Find remote software engineer jobs",
		"Entry level marketing positions in New York",
		"Senior React developer roles with good salary",
		"Part-time design jobs",
		"Contract data scientist positions",
	}
)

// Suggest returns completions for a partial query. Queries shorter than two
// characters get empty suggestions. A failing corpus degrades to generated
// suggestions only.
func (s *Service) Suggest(ctx context.Context, q string) *types.SuggestionResponse {
	resp := &types.SuggestionResponse{
		Suggestions: types.Suggestions{
			Titles:    []string{},
			Companies: []string{},
			Skills:    []string{},
			Locations: []string{},
		},
		NLPSuggestions: []string{},
	}
	q = strings.TrimSpace(q)
	if len(q) < minSuggestionQuery {
		return resp
	}

	result, err := s.corpus.FindJobs(ctx, corpus.Filter{Sort: corpus.SortNewest, Limit: suggestionScanLimit})
	if err != nil {
		s.logger.Warn("suggestion lookup failed", zap.String(logger.FieldQuery, q), zap.Error(err))
	} else {
		resp.Suggestions = CorpusSuggestions(result.Jobs, q)
	}

	nl := GenerateNLSuggestions(q)
	if len(nl) > maxNLSuggestions {
		nl = nl[:maxNLSuggestions]
	}
	resp.NLPSuggestions = nl
	return resp
}

// CorpusSuggestions returns the titles, companies, skills and locations of jobs
// that contain q, most frequent first.
func CorpusSuggestions(jobs []types.JobCandidate, q string) types.Suggestions {
	titles := newTally()
	companies := newTally()
	skills := newTally()
	locations := newTally()

	needle := strings.ToLower(q)
	matches := func(v string) bool {
		return v != "" && strings.Contains(strings.ToLower(v), needle)
	}

	for i := range jobs {
		job := &jobs[i]
		if matches(job.Title) {
			titles.add(job.Title)
		}
		if matches(job.Company) {
			companies.add(job.Company)
		}
		for _, skill := range job.Skills {
			if matches(skill) {
				skills.add(skill)
			}
		}
		if matches(job.Location) {
			locations.add(job.Location)
		}
	}

	return types.Suggestions{
		Titles:    titles.top(maxTitleSuggestions),
		Companies: companies.top(maxCompanySuggestions),
		Skills:    skills.top(maxSkillSuggestions),
		Locations: locations.top(maxLocationSuggestions),
	}
}

// tally counts values, remembering first-seen order for ties.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(v string) {
	if _, ok := t.counts[v]; !ok {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally) top(n int) []string {
	out := append([]string{}, t.order...)
	sort.SliceStable(out, func(i, j int) bool {
		return t.counts[out[i]] > t.counts[out[j]]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// GenerateNLSuggestions builds example natural-language queries related to q,
// without duplicates.
func GenerateNLSuggestions(q string) []string {
	lower := strings.ToLower(strings.TrimSpace(q))
	var out []string
	seen := make(map[string]bool)
	add := func(suggestions ...string) {
		for _, s := range suggestions {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	for _, role := range suggestionRoles {
		first, _, _ := strings.Cut(role, " ")
		if strings.Contains(role, lower) || strings.Contains(lower, first) {
			add(
				"Find "+role+" jobs",
				role+" positions in New York",
				"Remote "+role+" opportunities",
				"Senior "+role+" roles with good salary",
			)
		}
	}
	for _, location := range suggestionLocations {
		if strings.Contains(strings.ToLower(location), lower) {
			add(
				"Software engineer jobs in "+location,
				"Find jobs in "+location,
				location+" tech positions",
			)
		}
	}
	for _, exp := range suggestionExperiences {
		if strings.Contains(exp, lower) {
			add(
				exp+" developer positions",
				exp+" jobs in tech",
				"Find "+exp+" opportunities",
			)
		}
	}
	for _, jobType := range suggestionJobTypes {
		if strings.Contains(jobType, lower) {
			add(
				jobType+" software engineer jobs",
				jobType+" positions in startups",
				"Find "+jobType+" work",
			)
		}
	}
	if len(lower) <= shortQueryLength {
		add(genericSuggestions...)
	}

	if out == nil {
		return []string{}
	}
	return out
}
