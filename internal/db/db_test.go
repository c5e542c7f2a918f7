package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	schema := Schema()

	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS jobs")
	assert.Contains(t, schema, "search_vector     TSVECTOR GENERATED ALWAYS")
	assert.Contains(t, schema, "USING GIN (search_vector)")

	// Every selected column must exist in the table definition.
	for _, column := range []string{"id", "skills", "job_type", "salary_min", "work_arrangement", "click_count", "created_at"} {
		assert.Contains(t, schema, "\n    "+column+" ", column)
	}
}

func TestRecordInteraction_UnknownAction(t *testing.T) {
	db := &DB{}

	err := db.RecordInteraction(context.Background(), uuid.New(), types.Interaction("shared"))

	var unknown *corpus.UnknownInteractionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "shared", unknown.Action)
}

func TestInsertJobs_Empty(t *testing.T) {
	db := &DB{}

	n, err := db.InsertJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCloseWithoutPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}

func TestUpsertJobSQL_Placeholders(t *testing.T) {
	assert.Contains(t, upsertJobSQL, "$20)")
	assert.NotContains(t, upsertJobSQL, "$21")
}
