package corpus

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Dialect selects the SQL flavour a Filter renders to.
type Dialect int

// Supported dialects.
const (
	Postgres Dialect = iota
	SQLite
)

// SQLiteTimeLayout is the fixed-width layout SQLite stores timestamps in, so
// that text comparison orders chronologically.
const SQLiteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// JobColumns is the column list every backend selects, in scan order.
const JobColumns = `id, title, company, description, location, skills, industry, experience,
        job_type, salary_min, salary_max, is_remote, work_arrangement, company_size,
        status, view_count, application_count, save_count, click_count, created_at`

// sortClauses whitelists the ORDER BY clause of each sort key. Each ends on id
// so OFFSET pages never overlap.
var sortClauses = map[SortKey]string{
	SortNewest:          "created_at DESC, id",
	SortNewestThenViews: "created_at DESC, view_count DESC, id",
	SortMostViewed:      "view_count DESC, created_at DESC, id",
	SortPopular:         "view_count DESC, application_count DESC, save_count DESC, created_at DESC, id",
	SortTrending:        "view_count DESC, application_count DESC, created_at DESC, id",
}

// Query is a Filter rendered for one dialect.
type Query struct {
	// Where includes the WHERE keyword.
	Where   string
	OrderBy string
	// Page holds LIMIT/OFFSET, or "" for an unbounded query.
	Page string
	// Args binds Where; PageArgs binds Page.
	Args     []any
	PageArgs []any
	FullText bool
}

// Select returns the full SELECT statement for the jobs table.
func (q Query) Select() string {
	return fmt.Sprintf("SELECT %s\nFROM jobs\n%s\nORDER BY %s\n%s", JobColumns, q.Where, q.OrderBy, q.Page)
}

// Count returns the statement counting every match.
func (q Query) Count() string {
	return "SELECT COUNT(*) FROM jobs " + q.Where
}

// AllArgs returns Args followed by PageArgs.
func (q Query) AllArgs() []any {
	return append(append([]any{}, q.Args...), q.PageArgs...)
}

type sqlBuilder struct {
	dialect    Dialect
	conditions []string
	args       []any
	argIndex   int
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	if b.dialect == Postgres {
		s := fmt.Sprintf("$%d", b.argIndex)
		b.argIndex++
		return s
	}
	return "?"
}

func (b *sqlBuilder) in(column string, values []string) string {
	placeholders := make([]string, 0, len(values))
	for _, v := range values {
		placeholders = append(placeholders, b.arg(v))
	}
	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", "))
}

// contains renders a case-insensitive substring match against column.
func (b *sqlBuilder) contains(column, value string) string {
	pattern := "%" + escapeLike(value) + "%"
	if b.dialect == Postgres {
		return fmt.Sprintf("%s ILIKE %s", column, b.arg(pattern))
	}
	return fmt.Sprintf("%s LIKE %s ESCAPE '\\'", column, b.arg(pattern))
}

// skillContains matches a job with any skill containing one of values.
func (b *sqlBuilder) skillContains(values []string) string {
	var alternatives []string
	if b.dialect == Postgres {
		for _, v := range values {
			alternatives = append(alternatives, b.contains("s", v))
		}
		return fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE %s)", strings.Join(alternatives, " OR "))
	}
	for _, v := range values {
		alternatives = append(alternatives, b.contains("s.value", v))
	}
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(jobs.skills) AS s WHERE %s)", strings.Join(alternatives, " OR "))
}

func (b *sqlBuilder) remote() string {
	return fmt.Sprintf("(is_remote OR work_arrangement = %s OR %s)",
		b.arg(types.WorkArrangementRemote), b.contains("location", "remote"))
}

func (b *sqlBuilder) timeArg(t time.Time) string {
	if b.dialect == SQLite {
		return b.arg(t.UTC().Format(SQLiteTimeLayout))
	}
	return b.arg(t)
}

func (b *sqlBuilder) add(condition string) {
	b.conditions = append(b.conditions, condition)
}

// SQL renders f for dialect. Postgres serves Terms from the search_vector
// full-text index; SQLite falls back to substring matching.
func (f *Filter) SQL(dialect Dialect) Query {
	b := &sqlBuilder{dialect: dialect, argIndex: 1}
	q := Query{}

	b.add("status = " + b.arg(types.JobStatusActive))

	if len(f.JobTypes) > 0 {
		b.add(b.in("job_type", f.JobTypes))
	}
	if len(f.Experiences) > 0 {
		b.add(b.in("experience", f.Experiences))
	}
	if len(f.Industries) > 0 {
		b.add(b.in("industry", f.Industries))
	}
	if skills := nonEmpty(f.SkillsAny); len(skills) > 0 {
		b.add(b.skillContains(skills))
	}

	if terms := nonEmpty(f.Terms); len(terms) > 0 {
		if dialect == Postgres {
			b.add(fmt.Sprintf("search_vector @@ websearch_to_tsquery('english', %s)", b.arg(strings.Join(terms, " or "))))
			q.FullText = true
		} else {
			var alternatives []string
			for _, t := range terms {
				for _, column := range []string{"title", "description", "company"} {
					alternatives = append(alternatives, b.contains(column, t))
				}
			}
			alternatives = append(alternatives, b.skillContains(terms))
			b.add("(" + strings.Join(alternatives, " OR ") + ")")
		}
	}

	if !f.Location.empty() {
		var alternatives []string
		for _, p := range nonEmpty(f.Location.Patterns) {
			alternatives = append(alternatives, b.contains("location", p))
		}
		if f.Location.IncludeRemote {
			alternatives = append(alternatives, b.remote())
		}
		if len(alternatives) > 0 {
			b.add("(" + strings.Join(alternatives, " OR ") + ")")
		}
	}
	if f.RemoteOnly {
		b.add(b.remote())
	}

	if f.SalaryMin != nil {
		b.add("salary_min >= " + b.arg(*f.SalaryMin))
	}
	if f.SalaryMax != nil {
		b.add("salary_min <= " + b.arg(*f.SalaryMax))
	}
	if f.CreatedAfter != nil {
		b.add("created_at >= " + b.timeArg(*f.CreatedAfter))
	}

	if len(f.ExcludeIDs) > 0 {
		ids := make([]string, 0, len(f.ExcludeIDs))
		for _, id := range f.ExcludeIDs {
			ids = append(ids, id.String())
		}
		if dialect == Postgres {
			b.add(fmt.Sprintf("NOT (id = ANY(%s::uuid[]))", b.arg(ids)))
		} else {
			b.add("NOT " + b.in("id", ids))
		}
	}

	q.Where = "WHERE " + strings.Join(b.conditions, " AND ")
	q.Args = b.args

	q.OrderBy = sortClauses[f.Sort]
	if q.OrderBy == "" {
		q.OrderBy = sortClauses[SortNewest]
	}

	// Page placeholders continue the numbering of Args.
	b.args = nil
	switch {
	case f.Limit > 0:
		q.Page = fmt.Sprintf("LIMIT %s OFFSET %s", b.arg(f.Limit), b.arg(max(f.Offset, 0)))
	case f.Offset > 0 && dialect == SQLite:
		q.Page = "LIMIT -1 OFFSET " + b.arg(f.Offset)
	case f.Offset > 0:
		q.Page = "OFFSET " + b.arg(f.Offset)
	}
	q.PageArgs = b.args

	return q
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// escapeLike escapes LIKE wildcards so values match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
