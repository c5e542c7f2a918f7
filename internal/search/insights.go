package search

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
)

// InsightsFilter narrows market insights. Empty fields do not constrain.
type InsightsFilter struct {
	Industry   string
	Location   string
	Experience string
}

// Insights aggregates salary and distribution statistics over every active
// job matching in, reading the corpus a page at a time.
func (s *Service) Insights(ctx context.Context, in InsightsFilter) (*types.MarketInsights, error) {
	f := corpus.Filter{Sort: corpus.SortNewest, Limit: suggestionScanLimit}
	if in.Industry != "" {
		f.Industries = []string{in.Industry}
	}
	if in.Experience != "" {
		f.Experiences = []string{in.Experience}
	}
	if in.Location != "" {
		f.Location = &corpus.LocationFilter{Patterns: []string{in.Location}}
	}

	var jobs []types.JobCandidate
	for {
		result, err := s.corpus.FindJobs(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("failed to load market insights: %w", err)
		}
		jobs = append(jobs, result.Jobs...)
		if len(result.Jobs) < f.Limit || len(jobs) >= result.Total {
			break
		}
		f.Offset += len(result.Jobs)
	}

	insights := MarketInsights(jobs)
	insights.GeneratedAt = s.now().UTC()
	return &insights, nil
}

// MarketInsights summarizes jobs. Distinct values keep first-seen order and
// the salary average is rounded.
func MarketInsights(jobs []types.JobCandidate) types.MarketInsights {
	out := types.MarketInsights{
		TotalJobs:       len(jobs),
		TopIndustries:   []string{},
		TopLocations:    []string{},
		PopularJobTypes: []string{},
	}
	if len(jobs) == 0 {
		return out
	}

	industries := make(map[string]bool)
	locations := make(map[string]bool)
	jobTypes := make(map[string]bool)
	distinct := func(seen map[string]bool, list *[]string, v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			*list = append(*list, v)
		}
	}

	sum := 0
	out.Salary.Min = jobs[0].Salary.Min
	out.Salary.Max = jobs[0].Salary.Min
	for i := range jobs {
		job := &jobs[i]
		sum += job.Salary.Min
		out.Salary.Min = min(out.Salary.Min, job.Salary.Min)
		out.Salary.Max = max(out.Salary.Max, job.Salary.Min)

		distinct(industries, &out.TopIndustries, job.Industry)
		distinct(locations, &out.TopLocations, job.Location)
		distinct(jobTypes, &out.PopularJobTypes, job.JobType)
	}
	out.Salary.Average = int(math.Round(float64(sum) / float64(len(jobs))))
	return out
}

// PredictSalary validates req and returns the rule-based estimate.
func (s *Service) PredictSalary(req *types.SalaryPredictionRequest) (*types.SalaryPrediction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	prediction := ranking.PredictSalary(req)
	return &prediction, nil
}
