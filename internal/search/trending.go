package search

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Trending algorithms.
const (
	AlgorithmPopularity = "popularity"
	AlgorithmEngagement = "engagement"
	AlgorithmHybrid     = "hybrid"
)

// Trending defaults.
const (
	DefaultTrendingLimit     = 10
	DefaultTrendingTimeframe = 7
)

// TrendingOptions select the trending window and algorithm. Zero values use the defaults.
type TrendingOptions struct {
	Limit         int
	TimeframeDays int
	Algorithm     string
}

// Trending returns the jobs created within the timeframe that draw the most
// engagement. Hybrid runs both sources concurrently and falls back to the
// engagement source when the popularity source fails or finds nothing.
func (s *Service) Trending(ctx context.Context, opts TrendingOptions) (*types.TrendingResponse, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	limit = min(limit, MaxPageSize)
	days := opts.TimeframeDays
	if days <= 0 {
		days = DefaultTrendingTimeframe
	}
	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmHybrid
	}

	now := s.now()
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	var data []types.TrendingJob
	switch algorithm {
	case AlgorithmPopularity:
		jobs, err := s.trendingJobs(ctx, since, corpus.SortTrending, limit)
		if err != nil {
			return nil, err
		}
		data = ranking.PopularityTrending(jobs)
	case AlgorithmEngagement:
		jobs, err := s.trendingJobs(ctx, since, corpus.SortPopular, limit)
		if err != nil {
			return nil, err
		}
		data = ranking.EngagementTrending(jobs, now)
	case AlgorithmHybrid:
		var err error
		if data, err = s.hybridTrending(ctx, since, now, limit); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidParamError{Param: "algorithm", Value: algorithm}
	}

	return &types.TrendingResponse{
		Count:     len(data),
		Timeframe: fmt.Sprintf("%d days", days),
		Algorithm: algorithm,
		Data:      data,
	}, nil
}

func (s *Service) hybridTrending(ctx context.Context, since, now time.Time, limit int) ([]types.TrendingJob, error) {
	var (
		popular, engaged       []types.JobCandidate
		popularErr, engagedErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		popular, popularErr = s.trendingJobs(gctx, since, corpus.SortTrending, limit)
		return nil
	})
	g.Go(func() error {
		engaged, engagedErr = s.trendingJobs(gctx, since, corpus.SortPopular, limit)
		return nil
	})
	_ = g.Wait()

	if popularErr != nil {
		s.logger.Warn("popularity trending failed", zap.Error(popularErr))
	}
	if engagedErr != nil {
		if popularErr != nil {
			return nil, engagedErr
		}
		s.logger.Warn("engagement trending failed", zap.Error(engagedErr))
	}

	engagement := ranking.EngagementTrending(engaged, now)
	if popularErr != nil || len(popular) == 0 {
		return ranking.MergeTrending(engagement, nil, limit), nil
	}
	return ranking.MergeTrending(ranking.PopularityTrending(popular), engagement, limit), nil
}

func (s *Service) trendingJobs(ctx context.Context, since time.Time, sortKey corpus.SortKey, limit int) ([]types.JobCandidate, error) {
	result, err := s.corpus.FindJobs(ctx, corpus.Filter{
		CreatedAfter: &since,
		Sort:         sortKey,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find trending jobs: %w", err)
	}
	return result.Jobs, nil
}
