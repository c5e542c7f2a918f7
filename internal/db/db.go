// Package db provides the PostgreSQL job corpus.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ corpus.Store = (*DB)(nil)

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// FindJobs returns one page of active jobs matching f. Terms are matched
// through the search_vector full-text index.
func (db *DB) FindJobs(ctx context.Context, f corpus.Filter) (*corpus.Result, error) {
	q := f.SQL(corpus.Postgres)

	var total int
	if err := db.pool.QueryRow(ctx, q.Count(), q.Args...).Scan(&total); err != nil {
		return nil, &corpus.QueryError{Op: "count jobs", Cause: err}
	}

	rows, err := db.pool.Query(ctx, q.Select(), q.AllArgs()...)
	if err != nil {
		return nil, &corpus.QueryError{Op: "find jobs", Cause: err}
	}
	jobs, err := pgx.CollectRows(rows, scanJob)
	if err != nil {
		return nil, &corpus.QueryError{Op: "scan jobs", Cause: err}
	}

	return &corpus.Result{Jobs: jobs, Total: total, FullText: q.FullText}, nil
}

// GetJob retrieves a job by its ID
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobCandidate, error) {
	rows, err := db.pool.Query(ctx, "SELECT "+corpus.JobColumns+" FROM jobs WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	job, err := pgx.CollectOneRow(rows, scanJob)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// RecordInteraction increments the engagement counter action maps to
func (db *DB) RecordInteraction(ctx context.Context, id uuid.UUID, action types.Interaction) error {
	column := action.CounterColumn()
	if column == "" {
		return &corpus.UnknownInteractionError{Action: string(action)}
	}

	result, err := db.pool.Exec(ctx,
		fmt.Sprintf("UPDATE jobs SET %[1]s = %[1]s + 1 WHERE id = $1", column),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s interaction: %w", action, err)
	}
	if result.RowsAffected() == 0 {
		return corpus.ErrJobNotFound
	}
	return nil
}

// InsertJobs upserts jobs by ID in a single batch
func (db *DB) InsertJobs(ctx context.Context, jobs []types.JobCandidate) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range jobs {
		j := &jobs[i]
		skills := j.Skills
		if skills == nil {
			skills = []string{}
		}
		batch.Queue(upsertJobSQL,
			j.ID, j.Title, j.Company, j.Description, j.Location, skills, j.Industry,
			j.Experience, j.JobType, j.Salary.Min, j.Salary.Max, j.IsRemote,
			j.WorkArrangement, j.CompanySize, j.Status, j.ViewCount, j.ApplicationCount,
			j.SaveCount, j.ClickCount, j.CreatedAt,
		)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range jobs {
		if _, err := results.Exec(); err != nil {
			return i, fmt.Errorf("failed to insert job %s: %w", jobs[i].ID, err)
		}
	}
	return len(jobs), nil
}

// CountActive returns the number of active jobs
func (db *DB) CountActive(ctx context.Context) (int, error) {
	var n int
	err := db.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM jobs WHERE status = $1",
		types.JobStatusActive,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return n, nil
}

const upsertJobSQL = `INSERT INTO jobs (` + corpus.JobColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (id) DO UPDATE SET
	    title = EXCLUDED.title,
	    company = EXCLUDED.company,
	    description = EXCLUDED.description,
	    location = EXCLUDED.location,
	    skills = EXCLUDED.skills,
	    industry = EXCLUDED.industry,
	    experience = EXCLUDED.experience,
	    job_type = EXCLUDED.job_type,
	    salary_min = EXCLUDED.salary_min,
	    salary_max = EXCLUDED.salary_max,
	    is_remote = EXCLUDED.is_remote,
	    work_arrangement = EXCLUDED.work_arrangement,
	    company_size = EXCLUDED.company_size,
	    status = EXCLUDED.status,
	    view_count = EXCLUDED.view_count,
	    application_count = EXCLUDED.application_count,
	    save_count = EXCLUDED.save_count,
	    click_count = EXCLUDED.click_count,
	    created_at = EXCLUDED.created_at`

func scanJob(row pgx.CollectableRow) (types.JobCandidate, error) {
	var j types.JobCandidate
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Location, &j.Skills,
		&j.Industry, &j.Experience, &j.JobType, &j.Salary.Min, &j.Salary.Max, &j.IsRemote,
		&j.WorkArrangement, &j.CompanySize, &j.Status, &j.ViewCount, &j.ApplicationCount,
		&j.SaveCount, &j.ClickCount, &j.CreatedAt)
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return j, err
}
