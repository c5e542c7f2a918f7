package recommend

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Strategy names, also reported as the source of each recommendation.
const (
	StrategyExactMatch = "exact_match"
	StrategySkills     = "skills"
	StrategyIndustry   = "industry"
	StrategyExperience = "experience"
	StrategyLocation   = "location"
	StrategyPopular    = "popular"
)

// exactMatchCap bounds the exact-match strategy regardless of the request limit.
const exactMatchCap = 10

// Request is the input every strategy receives.
type Request struct {
	User *types.UserProfile
	// Level is the user's explicit or inferred experience level, or "".
	Level string
	// Limit is the number of candidates still needed.
	Limit int
	// Exclude holds IDs that must not be returned.
	Exclude []uuid.UUID
}

// Strategy is one retrieval heuristic of the chain. Find returns nil when the
// profile lacks the signal the strategy needs.
type Strategy struct {
	Name string
	Find func(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error)
}

// DefaultStrategies returns the chain in execution order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: StrategyExactMatch, Find: findExactMatch},
		{Name: StrategySkills, Find: findBySkills},
		{Name: StrategyIndustry, Find: findByIndustry},
		{Name: StrategyExperience, Find: findByExperience},
		{Name: StrategyLocation, Find: findByLocation},
		{Name: StrategyPopular, Find: findPopular},
	}
}

func find(ctx context.Context, c corpus.Corpus, f corpus.Filter) ([]types.JobCandidate, error) {
	result, err := c.FindJobs(ctx, f)
	if err != nil {
		return nil, err
	}
	return result.Jobs, nil
}

// findExactMatch ANDs every condition the profile provides.
func findExactMatch(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	f := corpus.Filter{
		ExcludeIDs: req.Exclude,
		Sort:       corpus.SortNewestThenViews,
		Limit:      min(req.Limit, exactMatchCap),
	}
	conditions := 0
	if len(req.User.Skills) > 0 {
		f.SkillsAny = req.User.Skills
		conditions++
	}
	if len(req.User.Preferences.Industries) > 0 {
		f.Industries = req.User.Preferences.Industries
		conditions++
	}
	if req.Level != "" {
		f.Experiences = []string{req.Level}
		conditions++
	}
	if conditions == 0 {
		return nil, nil
	}
	return find(ctx, c, f)
}

// findBySkills over-fetches skill matches, then keeps those sharing the most skills.
func findBySkills(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	if len(req.User.Skills) == 0 {
		return nil, nil
	}
	jobs, err := find(ctx, c, corpus.Filter{
		SkillsAny:  req.User.Skills,
		ExcludeIDs: req.Exclude,
		Sort:       corpus.SortNewest,
		Limit:      req.Limit * 2,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(jobs))
	for i := range jobs {
		counts[jobs[i].ID] = skills.CountMatching(jobs[i].Skills, req.User.Skills)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return counts[jobs[i].ID] > counts[jobs[j].ID]
	})

	if len(jobs) > req.Limit {
		jobs = jobs[:req.Limit]
	}
	return jobs, nil
}

func findByIndustry(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	if len(req.User.Preferences.Industries) == 0 {
		return nil, nil
	}
	return find(ctx, c, corpus.Filter{
		Industries: req.User.Preferences.Industries,
		ExcludeIDs: req.Exclude,
		Sort:       corpus.SortMostViewed,
		Limit:      req.Limit,
	})
}

// findByExperience matches the user's level and the levels directly around it.
func findByExperience(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	levels := experienceWindow(req.Level)
	if len(levels) == 0 {
		return nil, nil
	}
	return find(ctx, c, corpus.Filter{
		Experiences: levels,
		ExcludeIDs:  req.Exclude,
		Sort:        corpus.SortNewest,
		Limit:       req.Limit,
	})
}

func experienceWindow(level string) []string {
	i := types.ExperienceIndex(level)
	if i < 0 {
		return nil
	}
	lo, hi := max(i-1, 0), min(i+1, len(types.ExperienceLevels)-1)
	return append([]string(nil), types.ExperienceLevels[lo:hi+1]...)
}

// findByLocation matches the user's location, preferred locations and, when
// wanted, remote jobs. Without any location signal it returns remote jobs.
func findByLocation(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	f := corpus.Filter{
		ExcludeIDs: req.Exclude,
		Sort:       corpus.SortNewest,
		Limit:      req.Limit,
	}

	loc := &corpus.LocationFilter{IncludeRemote: req.User.Preferences.RemoteWork}
	if req.User.Location != "" {
		loc.Patterns = append(loc.Patterns, req.User.Location)
	}
	for _, p := range req.User.Preferences.PreferredLocations {
		if p != "" {
			loc.Patterns = append(loc.Patterns, p)
		}
	}

	if len(loc.Patterns) == 0 && !loc.IncludeRemote {
		f.RemoteOnly = true
	} else {
		f.Location = loc
	}
	return find(ctx, c, f)
}

func findPopular(ctx context.Context, c corpus.Corpus, req Request) ([]types.JobCandidate, error) {
	return find(ctx, c, corpus.Filter{
		ExcludeIDs: req.Exclude,
		Sort:       corpus.SortPopular,
		Limit:      req.Limit,
	})
}
