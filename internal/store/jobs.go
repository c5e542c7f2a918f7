package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
)

var _ corpus.Store = (*DB)(nil)

// FindJobs returns one page of active jobs matching f. Terms use substring
// matching, so the result never reports full-text use.
func (d *DB) FindJobs(ctx context.Context, f corpus.Filter) (*corpus.Result, error) {
	q := f.SQL(corpus.SQLite)

	var total int
	if err := d.db.QueryRowContext(ctx, q.Count(), q.Args...).Scan(&total); err != nil {
		return nil, &corpus.QueryError{Op: "count jobs", Cause: err}
	}

	rows, err := d.db.QueryContext(ctx, q.Select(), q.AllArgs()...)
	if err != nil {
		return nil, &corpus.QueryError{Op: "find jobs", Cause: err}
	}
	defer rows.Close()

	jobs := make([]types.JobCandidate, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, &corpus.QueryError{Op: "scan jobs", Cause: err}
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, &corpus.QueryError{Op: "find jobs", Cause: err}
	}

	return &corpus.Result{Jobs: jobs, Total: total}, nil
}

// GetJob returns the job with id, or nil, nil when it does not exist.
func (d *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobCandidate, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+corpus.JobColumns+" FROM jobs WHERE id = ?", id.String())
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// RecordInteraction increments the counter action maps to.
func (d *DB) RecordInteraction(ctx context.Context, id uuid.UUID, action types.Interaction) error {
	column := action.CounterColumn()
	if column == "" {
		return &corpus.UnknownInteractionError{Action: string(action)}
	}

	res, err := d.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE jobs SET %[1]s = %[1]s + 1 WHERE id = ?", column),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s interaction: %w", action, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record %s interaction: %w", action, err)
	}
	if n == 0 {
		return corpus.ErrJobNotFound
	}
	return nil
}

// InsertJobs upserts jobs by ID in one transaction.
func (d *DB) InsertJobs(ctx context.Context, jobs []types.JobCandidate) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertJobSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range jobs {
		j := &jobs[i]
		skills := j.Skills
		if skills == nil {
			skills = []string{}
		}
		skillsJSON, err := json.Marshal(skills)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal skills: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			j.ID.String(), j.Title, j.Company, j.Description, j.Location, string(skillsJSON),
			j.Industry, j.Experience, j.JobType, j.Salary.Min, j.Salary.Max, j.IsRemote,
			j.WorkArrangement, j.CompanySize, j.Status, j.ViewCount, j.ApplicationCount,
			j.SaveCount, j.ClickCount, j.CreatedAt.UTC().Format(corpus.SQLiteTimeLayout),
		); err != nil {
			return 0, fmt.Errorf("failed to insert job %s: %w", j.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", err)
	}
	return len(jobs), nil
}

// CountActive returns the number of active jobs.
func (d *DB) CountActive(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE status = ?`, types.JobStatusActive).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return n, nil
}

const upsertJobSQL = `INSERT INTO jobs (` + corpus.JobColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title = excluded.title,
  company = excluded.company,
  description = excluded.description,
  location = excluded.location,
  skills = excluded.skills,
  industry = excluded.industry,
  experience = excluded.experience,
  job_type = excluded.job_type,
  salary_min = excluded.salary_min,
  salary_max = excluded.salary_max,
  is_remote = excluded.is_remote,
  work_arrangement = excluded.work_arrangement,
  company_size = excluded.company_size,
  status = excluded.status,
  view_count = excluded.view_count,
  application_count = excluded.application_count,
  save_count = excluded.save_count,
  click_count = excluded.click_count,
  created_at = excluded.created_at;`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (types.JobCandidate, error) {
	var (
		j                     types.JobCandidate
		id, skills, createdAt string
	)
	err := row.Scan(&id, &j.Title, &j.Company, &j.Description, &j.Location, &skills,
		&j.Industry, &j.Experience, &j.JobType, &j.Salary.Min, &j.Salary.Max, &j.IsRemote,
		&j.WorkArrangement, &j.CompanySize, &j.Status, &j.ViewCount, &j.ApplicationCount,
		&j.SaveCount, &j.ClickCount, &createdAt)
	if err != nil {
		return j, err
	}

	if j.ID, err = uuid.Parse(id); err != nil {
		return j, fmt.Errorf("invalid job id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(skills), &j.Skills); err != nil {
		return j, fmt.Errorf("invalid skills for job %s: %w", id, err)
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if j.CreatedAt, err = time.Parse(corpus.SQLiteTimeLayout, createdAt); err != nil {
		return j, fmt.Errorf("invalid created_at for job %s: %w", id, err)
	}
	return j, nil
}
