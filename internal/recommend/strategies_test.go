package recommend

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBySkills_OrdersByMatchCount(t *testing.T) {
	newest := types.JobCandidate{
		ID: uuid.New(), Title: "Newest", Skills: []string{"React"},
		Status: types.JobStatusActive, CreatedAt: daysAgo(1),
	}
	older := types.JobCandidate{
		ID: uuid.New(), Title: "Older", Skills: []string{"React", "JavaScript"},
		Status: types.JobStatusActive, CreatedAt: daysAgo(5),
	}
	c := corpus.NewMemory([]types.JobCandidate{newest, older})

	jobs, err := findBySkills(context.Background(), c, Request{User: reactProfile(), Limit: 1})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Older", jobs[0].Title)
}

func TestExactMatch_NoConditions(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(mixedJobs(5))}

	jobs, err := findExactMatch(context.Background(), rec, Request{User: &types.UserProfile{}, Limit: 20})
	require.NoError(t, err)
	assert.Nil(t, jobs)
	assert.Empty(t, rec.filters)
}

func TestExactMatch_CapsLimit(t *testing.T) {
	rec := &recordingCorpus{Corpus: corpus.NewMemory(nil)}

	_, err := findExactMatch(context.Background(), rec, Request{User: reactProfile(), Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, rec.filters[0].Limit)
}

func TestFindByLocation(t *testing.T) {
	tests := []struct {
		name         string
		profile      *types.UserProfile
		wantPatterns []string
		wantRemote   bool
		remoteOnly   bool
	}{
		{
			name:       "no signal falls back to remote jobs",
			profile:    &types.UserProfile{},
			remoteOnly: true,
		},
		{
			name: "location and preferred locations",
			profile: &types.UserProfile{
				Location:    "Austin",
				Preferences: types.Preferences{PreferredLocations: []string{"Denver", ""}},
			},
			wantPatterns: []string{"Austin", "Denver"},
		},
		{
			name:       "remote preference alone",
			profile:    &types.UserProfile{Preferences: types.Preferences{RemoteWork: true}},
			wantRemote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingCorpus{Corpus: corpus.NewMemory(nil)}

			_, err := findByLocation(context.Background(), rec, Request{User: tt.profile, Limit: 5})
			require.NoError(t, err)
			require.Len(t, rec.filters, 1)

			f := rec.filters[0]
			assert.Equal(t, tt.remoteOnly, f.RemoteOnly)
			assert.Equal(t, corpus.SortNewest, f.Sort)
			if tt.remoteOnly {
				assert.Nil(t, f.Location)
				return
			}
			require.NotNil(t, f.Location)
			assert.Equal(t, tt.wantPatterns, f.Location.Patterns)
			assert.Equal(t, tt.wantRemote, f.Location.IncludeRemote)
		})
	}
}

func TestExperienceWindow(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
	}{
		{types.ExperienceEntry, []string{types.ExperienceEntry, types.ExperienceMid}},
		{types.ExperienceSenior, []string{types.ExperienceMid, types.ExperienceSenior, types.ExperienceExecutive}},
		{types.ExperienceExecutive, []string{types.ExperienceSenior, types.ExperienceExecutive}},
		{"", nil},
		{"Wizard", nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, experienceWindow(tt.level))
		})
	}
}

func TestDefaultStrategies_Order(t *testing.T) {
	var names []string
	for _, s := range DefaultStrategies() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		StrategyExactMatch, StrategySkills, StrategyIndustry,
		StrategyExperience, StrategyLocation, StrategyPopular,
	}, names)
}
