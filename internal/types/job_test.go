//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobCandidate_Remote(t *testing.T) {
	tests := []struct {
		name string
		job  JobCandidate
		want bool
	}{
		{"flag", JobCandidate{IsRemote: true, Location: "Austin, TX"}, true},
		{"arrangement", JobCandidate{WorkArrangement: WorkArrangementRemote}, true},
		{"location text", JobCandidate{Location: "Remote - US"}, true},
		{"onsite", JobCandidate{Location: "Boston, MA", WorkArrangement: "On-site"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.Remote())
		})
	}
}

func TestJobCandidate_Engagement(t *testing.T) {
	job := JobCandidate{ViewCount: 10, ApplicationCount: 5, SaveCount: 3, ClickCount: 100}
	assert.Equal(t, 23, job.Engagement())
}

func TestJobCandidate_AgeDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	job := JobCandidate{CreatedAt: now.Add(-36 * time.Hour)}
	assert.InDelta(t, 1.5, job.AgeDays(now), 1e-9)
}

func TestAdjacentExperience(t *testing.T) {
	assert.True(t, AdjacentExperience(ExperienceMid, ExperienceSenior))
	assert.True(t, AdjacentExperience(ExperienceMid, ExperienceEntry))
	assert.False(t, AdjacentExperience(ExperienceMid, ExperienceMid))
	assert.False(t, AdjacentExperience(ExperienceEntry, ExperienceExecutive))
	assert.False(t, AdjacentExperience("", ExperienceEntry))
}

func TestInteraction_CounterColumn(t *testing.T) {
	assert.Equal(t, "view_count", InteractionViewed.CounterColumn())
	assert.Equal(t, "click_count", InteractionClicked.CounterColumn())
	assert.Equal(t, "save_count", InteractionSaved.CounterColumn())
	assert.Equal(t, "application_count", InteractionApplied.CounterColumn())
	assert.Equal(t, "", Interaction("shared").CounterColumn())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 12, 30)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	p = NewPagination(1, 12, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}
