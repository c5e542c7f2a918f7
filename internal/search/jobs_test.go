package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJob(t *testing.T) {
	svc := fixtureService()

	job, err := svc.GetJob(context.Background(), idNurse)
	require.NoError(t, err)
	assert.Equal(t, "Nurse Practitioner", job.Title)

	_, err = svc.GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, corpus.ErrJobNotFound)
}

func TestRecordInteraction(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	require.NoError(t, svc.RecordInteraction(ctx, idJunior, types.InteractionApplied))
	require.NoError(t, svc.RecordInteraction(ctx, idJunior, types.InteractionViewed))

	job, err := svc.GetJob(ctx, idJunior)
	require.NoError(t, err)
	assert.Equal(t, 1, job.ApplicationCount)
	assert.Equal(t, 4, job.ViewCount)

	var unknown *corpus.UnknownInteractionError
	require.ErrorAs(t, svc.RecordInteraction(ctx, idJunior, "shared"), &unknown)
	assert.Equal(t, "shared", unknown.Action)

	assert.ErrorIs(t, svc.RecordInteraction(ctx, uuid.New(), types.InteractionSaved), corpus.ErrJobNotFound)
}

func TestCountActive(t *testing.T) {
	n, ok, err := fixtureService().CountActive(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, n)
}

func TestUnsupportedCapabilities(t *testing.T) {
	svc := newTestService(findOnly{c: corpus.NewMemory(fixtureJobs())}, nil)
	ctx := context.Background()

	_, err := svc.GetJob(ctx, idNurse)
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.ErrorIs(t, svc.RecordInteraction(ctx, idNurse, types.InteractionViewed), ErrUnsupported)
	var unknown *corpus.UnknownInteractionError
	assert.ErrorAs(t, svc.RecordInteraction(ctx, idNurse, "shared"), &unknown)

	_, ok, err := svc.CountActive(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}
