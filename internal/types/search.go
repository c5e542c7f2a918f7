package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SearchResult is a job returned by search, with relevance annotations for NL queries.
type SearchResult struct {
	JobCandidate
	RelevanceScore int      `json:"relevanceScore,omitempty"`
	MatchingSkills []string `json:"matchingSkills,omitempty"`
}

// Pagination describes one page of a search result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes pagination metadata for page (1-based) of size limit over total matches.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// SearchResponse is the result of a job search through either dispatch path.
type SearchResponse struct {
	Count       int            `json:"count"`
	Total       int            `json:"total"`
	Query       string         `json:"query,omitempty"`
	NaturalLang bool           `json:"naturalLanguage"`
	ParsedQuery *ParsedQuery   `json:"parsedQuery,omitempty"`
	Pagination  Pagination     `json:"pagination"`
	Data        []SearchResult `json:"data"`
}

// Suggestions are corpus-derived completions for a partial query.
type Suggestions struct {
	Titles    []string `json:"titles"`
	Companies []string `json:"companies"`
	Skills    []string `json:"skills"`
	Locations []string `json:"locations"`
}

// SuggestionResponse combines corpus suggestions with generated natural-language examples.
type SuggestionResponse struct {
	Suggestions    Suggestions `json:"suggestions"`
	NLPSuggestions []string    `json:"nlpSuggestions"`
}

// EngagementVelocity is per-day engagement of a trending job.
type EngagementVelocity struct {
	ViewsPerDay        float64 `json:"views_per_day"`
	ApplicationsPerDay float64 `json:"applications_per_day"`
	SavesPerDay        float64 `json:"saves_per_day"`
}

// TrendingJob is a job annotated with a trend score and the source that ranked it.
type TrendingJob struct {
	JobCandidate
	TrendScore float64             `json:"trendScore"`
	Velocity   *EngagementVelocity `json:"engagement_velocity,omitempty"`
	Source     string              `json:"source,omitempty"`
}

// TrendingResponse is the result of a trending-jobs request.
type TrendingResponse struct {
	Count     int           `json:"count"`
	Timeframe string        `json:"timeframe"`
	Algorithm string        `json:"algorithm_used"`
	Data      []TrendingJob `json:"data"`
}

// SalaryInsights summarizes advertised minimum salaries.
type SalaryInsights struct {
	Average int `json:"average"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// MarketInsights aggregates the active corpus, optionally filtered.
type MarketInsights struct {
	TotalJobs       int            `json:"totalJobs"`
	Salary          SalaryInsights `json:"salary_insights"`
	TopIndustries   []string       `json:"top_industries"`
	TopLocations    []string       `json:"top_locations"`
	PopularJobTypes []string       `json:"popular_job_types"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// SalaryPredictionRequest describes a job whose salary should be estimated.
type SalaryPredictionRequest struct {
	Experience string   `json:"experience,omitempty" validate:"omitempty,oneof=Entry-level Mid-level Senior Executive"`
	Industry   string   `json:"industry,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// Validate validates the SalaryPredictionRequest using the validator.
func (r *SalaryPredictionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SalaryPrediction is a rule-based salary estimate.
type SalaryPrediction struct {
	PredictedSalary int    `json:"predicted_salary"`
	Method          string `json:"method"`
}
