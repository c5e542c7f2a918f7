package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// nlMinLength is the length a query must exceed to be treated as natural language.
const nlMinLength = 10

var nlVerbs = regexp.MustCompile(`(?i)\b(find|looking|want|need|search|seeking)\b`)

// IsNaturalLanguage reports whether query reads as a natural-language request
// rather than a keyword.
func IsNaturalLanguage(query string) bool {
	return len(query) > nlMinLength && nlVerbs.MatchString(query)
}

// Params are the inputs of a job search.
type Params struct {
	Search     string
	Location   string
	JobType    string
	Experience string
	Industry   string
	Skills     []string
	SalaryMin  *int
	SalaryMax  *int
	Remote     bool
	Page       int
	Limit      int
}

// Search dispatches p.Search to natural-language search when it reads as a
// request, and to keyword search otherwise. Structured filters apply only to
// keyword search.
func (s *Service) Search(ctx context.Context, p Params) (*types.SearchResponse, error) {
	if IsNaturalLanguage(p.Search) {
		s.logger.Debug("natural language query detected", zap.String(logger.FieldQuery, logger.Truncate(p.Search, 80)))
		return s.SearchNL(ctx, p.Search, p.Page, p.Limit)
	}
	return s.searchKeyword(ctx, p)
}

// SearchNL parses query and searches with the extracted intent. Results on the
// page are ordered by relevance.
func (s *Service) SearchNL(ctx context.Context, query string, page, limit int) (*types.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	parsed := s.parser.Parse(query)
	if parsed == nil {
		return nil, ErrEmptyQuery
	}

	page, limit = s.page(page, limit)
	f := NLFilter(parsed)
	f.Limit = limit
	f.Offset = (page - 1) * limit

	result, err := s.corpus.FindJobs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	data := ranking.ScoreSearchResults(result.Jobs, parsed, result.FullText)
	return &types.SearchResponse{
		Count:       len(data),
		Total:       result.Total,
		Query:       query,
		NaturalLang: true,
		ParsedQuery: parsed,
		Pagination:  types.NewPagination(page, limit, result.Total),
		Data:        data,
	}, nil
}

// NLFilter turns a parsed query into a corpus filter. A Remote job type becomes
// a remote filter and suppresses the location filter.
func NLFilter(parsed *types.ParsedQuery) corpus.Filter {
	f := corpus.Filter{Sort: corpus.SortNewest}

	terms := make([]string, 0, len(parsed.SearchTerms)+len(parsed.Skills))
	for _, t := range append(append([]string{}, parsed.SearchTerms...), parsed.Skills...) {
		if t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) > 0 {
		f.Terms = terms
	}

	jobType := types.StringValue(parsed.JobType)
	switch jobType {
	case "":
	case types.JobTypeRemote:
		f.RemoteOnly = true
	default:
		f.JobTypes = []string{jobType}
	}

	if parsed.Experience != nil {
		f.Experiences = []string{*parsed.Experience}
	}
	if parsed.Industry != nil {
		f.Industries = []string{*parsed.Industry}
	}
	if parsed.Location != nil && jobType != types.JobTypeRemote {
		f.Location = &corpus.LocationFilter{Patterns: []string{*parsed.Location}}
	}

	if parsed.Salary != nil {
		if parsed.Salary.Min > 0 {
			f.SalaryMin = corpus.IntPtr(parsed.Salary.Min)
		}
		if parsed.Salary.Max != nil {
			f.SalaryMax = corpus.IntPtr(*parsed.Salary.Max)
		}
	}

	if len(parsed.Skills) > 0 {
		f.SkillsAny = parsed.Skills
	}
	return f
}

func (s *Service) searchKeyword(ctx context.Context, p Params) (*types.SearchResponse, error) {
	page, limit := s.page(p.Page, p.Limit)
	f := KeywordFilter(p)
	f.Limit = limit
	f.Offset = (page - 1) * limit

	result, err := s.corpus.FindJobs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	data := make([]types.SearchResult, 0, len(result.Jobs))
	for _, job := range result.Jobs {
		data = append(data, types.SearchResult{JobCandidate: job})
	}
	return &types.SearchResponse{
		Count:      len(data),
		Total:      result.Total,
		Query:      p.Search,
		Pagination: types.NewPagination(page, limit, result.Total),
		Data:       data,
	}, nil
}

// KeywordFilter builds the filter for a literal search: the keyword across
// title, description, company and skills plus the structured filters.
func KeywordFilter(p Params) corpus.Filter {
	f := corpus.Filter{Sort: corpus.SortNewest}

	if search := strings.TrimSpace(p.Search); search != "" {
		f.Terms = []string{search}
	}

	switch location := strings.TrimSpace(p.Location); {
	case location == "":
	case strings.EqualFold(location, "remote"):
		f.Location = &corpus.LocationFilter{IncludeRemote: true}
	default:
		f.Location = &corpus.LocationFilter{Patterns: []string{location}}
	}

	if p.JobType != "" {
		f.JobTypes = []string{p.JobType}
	}
	if p.Experience != "" {
		f.Experiences = []string{p.Experience}
	}
	if p.Industry != "" {
		f.Industries = []string{p.Industry}
	}
	if p.Remote {
		f.RemoteOnly = true
	}

	var skillsAny []string
	for _, skill := range p.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			skillsAny = append(skillsAny, skill)
		}
	}
	f.SkillsAny = skillsAny

	f.SalaryMin = p.SalaryMin
	f.SalaryMax = p.SalaryMax
	return f
}

// SplitSkills splits a comma-separated skills parameter.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
