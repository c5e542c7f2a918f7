package corpus

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func compositeFilter() Filter {
	return Filter{
		JobTypes:   []string{types.JobTypeFullTime},
		SkillsAny:  []string{"React"},
		Terms:      []string{"developer"},
		Location:   &LocationFilter{Patterns: []string{"Austin"}, IncludeRemote: true},
		SalaryMin:  IntPtr(80000),
		ExcludeIDs: []uuid.UUID{uuid.MustParse("00000000-0000-0000-0000-000000000001")},
		Sort:       SortPopular,
		Limit:      10,
		Offset:     20,
	}
}

func TestFilterSQL_Postgres(t *testing.T) {
	f := compositeFilter()
	q := f.SQL(Postgres)

	assert.Equal(t, "WHERE status = $1"+
		" AND job_type IN ($2)"+
		" AND EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE $3)"+
		" AND search_vector @@ websearch_to_tsquery('english', $4)"+
		" AND (location ILIKE $5 OR (is_remote OR work_arrangement = $6 OR location ILIKE $7))"+
		" AND salary_min >= $8"+
		" AND NOT (id = ANY($9::uuid[]))", q.Where)
	assert.Equal(t, []any{
		types.JobStatusActive, types.JobTypeFullTime, "%React%", "developer",
		"%Austin%", types.WorkArrangementRemote, "%remote%", 80000,
		[]string{"00000000-0000-0000-0000-000000000001"},
	}, q.Args)
	assert.Equal(t, "LIMIT $10 OFFSET $11", q.Page)
	assert.Equal(t, []any{10, 20}, q.PageArgs)
	assert.Equal(t, "view_count DESC, application_count DESC, save_count DESC, created_at DESC, id", q.OrderBy)
	assert.True(t, q.FullText)
	assert.Len(t, q.AllArgs(), 11)
}

func TestFilterSQL_SQLite(t *testing.T) {
	f := compositeFilter()
	q := f.SQL(SQLite)

	assert.Contains(t, q.Where, "status = ?")
	assert.Contains(t, q.Where, "EXISTS (SELECT 1 FROM json_each(jobs.skills) AS s WHERE s.value LIKE ? ESCAPE '\\')")
	assert.Contains(t, q.Where, "(title LIKE ? ESCAPE '\\' OR description LIKE ? ESCAPE '\\' OR company LIKE ? ESCAPE '\\' OR EXISTS")
	assert.Contains(t, q.Where, "NOT id IN (?)")
	assert.NotContains(t, q.Where, "$")
	assert.Equal(t, "LIMIT ? OFFSET ?", q.Page)
	assert.False(t, q.FullText)
}

func TestFilterSQL_Defaults(t *testing.T) {
	f := Filter{}
	q := f.SQL(Postgres)

	assert.Equal(t, "WHERE status = $1", q.Where)
	assert.Equal(t, "created_at DESC, id", q.OrderBy)
	assert.Empty(t, q.Page)
	assert.Empty(t, q.PageArgs)
	assert.Equal(t, "SELECT COUNT(*) FROM jobs WHERE status = $1", q.Count())
}

func TestFilterSQL_OffsetWithoutLimit(t *testing.T) {
	f := Filter{Offset: 5}
	assert.Equal(t, "OFFSET $2", f.SQL(Postgres).Page)
	assert.Equal(t, "LIMIT -1 OFFSET ?", f.SQL(SQLite).Page)
}

func TestFilterSQL_SQLiteTimeArgument(t *testing.T) {
	after := time.Date(2026, 2, 20, 8, 30, 0, 0, time.FixedZone("EST", -5*3600))
	f := Filter{CreatedAfter: &after}

	q := f.SQL(SQLite)
	assert.Equal(t, "WHERE status = ? AND created_at >= ?", q.Where)
	assert.Equal(t, "2026-02-20T13:30:00.000000000Z", q.Args[1])
}

func TestFilterSQL_EmptyLocationIgnored(t *testing.T) {
	f := Filter{Location: &LocationFilter{}}
	assert.Equal(t, "WHERE status = $1", f.SQL(Postgres).Where)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_x\\y`, escapeLike(`100%_x\y`))
}
