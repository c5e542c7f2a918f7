// Package recommend implements the recommendation engine: an ordered chain of
// retrieval strategies over the job corpus whose merged candidates are scored
// and ranked.
package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// DefaultLimit is the number of recommendations returned when none is requested.
const DefaultLimit = 20

// Options tune a single recommendation request.
type Options struct {
	Limit int
	// ExcludeApplied drops jobs the user already applied to.
	ExcludeApplied bool
}

// DefaultOptions returns a limit of DefaultLimit with applied jobs excluded.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit, ExcludeApplied: true}
}

// Engine produces ranked recommendations from a corpus. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	corpus     corpus.Corpus
	logger     *zap.Logger
	now        func() time.Time
	strategies []Strategy
}

// NewEngine creates an engine over c running the default strategy chain.
func NewEngine(c corpus.Corpus, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		corpus:     c,
		logger:     logger,
		now:        time.Now,
		strategies: DefaultStrategies(),
	}
}

// WithClock replaces the clock used for recency and experience inference.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Recommend returns at most opts.Limit recommendations for user, best first.
// It never fails: strategies that error are logged and skipped, and an empty
// slice means nothing could be recommended.
func (e *Engine) Recommend(ctx context.Context, user *types.UserProfile, opts Options) []types.ScoredRecommendation {
	if user == nil {
		user = &types.UserProfile{}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	now := e.now()

	exclude := make([]uuid.UUID, 0, limit)
	seen := make(map[uuid.UUID]bool)
	if opts.ExcludeApplied {
		for _, id := range user.AppliedJobIDs {
			if !seen[id] {
				seen[id] = true
				exclude = append(exclude, id)
			}
		}
	}

	req := Request{
		User:  user,
		Level: user.EffectiveExperienceLevel(now),
	}
	candidates := make([]ranking.Candidate, 0, limit)

	for _, s := range e.strategies {
		remaining := limit - len(candidates)
		if remaining <= 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			e.logger.Warn("recommendation chain stopped", zap.String("strategy", s.Name), zap.Error(err))
			break
		}

		req.Limit = remaining
		req.Exclude = exclude
		jobs := e.run(ctx, s, req)

		found := 0
		for _, job := range jobs {
			if len(candidates) >= limit {
				break
			}
			if seen[job.ID] {
				continue
			}
			seen[job.ID] = true
			exclude = append(exclude, job.ID)
			candidates = append(candidates, ranking.Candidate{Job: job, Source: s.Name})
			found++
		}

		e.logger.Debug("recommendation strategy",
			zap.String("strategy", s.Name),
			zap.Int("found", found),
			zap.Int("accumulated", len(candidates)),
		)
	}

	return ranking.RankRecommendations(candidates, user, limit, now)
}

// run executes one strategy, converting errors and panics into an empty result.
func (e *Engine) run(ctx context.Context, s Strategy, req Request) (jobs []types.JobCandidate) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("recommendation strategy failed",
				zap.String("strategy", s.Name),
				zap.Error(fmt.Errorf("panic: %v", r)),
			)
			jobs = nil
		}
	}()

	jobs, err := s.Find(ctx, e.corpus, req)
	if err != nil {
		e.logger.Warn("recommendation strategy failed", zap.String("strategy", s.Name), zap.Error(err))
		return nil
	}
	return jobs
}
