package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"antistress/internal/database"
	. "antistress/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessStressLevel_RecordsSnapshotAndPrediction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.controller.RegisterWorker(ctx, annaKey(), true))

	var seen Measurements
	classifier := ClassifierFunc(func(_ context.Context, m Measurements) (StressLevel, error) {
		seen = m
		return StressLevelMedium, nil
	})
	assessment := NewAssessmentController(env.controller, classifier)

	level, err := assessment.AssessStressLevel(ctx, annaKey(), time.Now().UTC(), maxMeasurements())
	require.NoError(t, err)
	assert.Equal(t, StressLevelMedium, level)
	assert.Equal(t, maxMeasurements(), seen, "the classifier sees the submitted measurements")

	infoCount, err := env.infos.Count(ctx)
	require.NoError(t, err)
	predictionCount, err := env.predictions.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, infoCount)
	assert.EqualValues(t, 1, predictionCount)
}

func TestAssessStressLevel_UnregisteredWorker(t *testing.T) {
	env := newTestEnv(t)

	classifier := ClassifierFunc(func(context.Context, Measurements) (StressLevel, error) {
		t.Fatal("classifier must not run when the snapshot is rejected")
		return "", nil
	})
	assessment := NewAssessmentController(env.controller, classifier)

	_, err := assessment.AssessStressLevel(context.Background(), annaKey(), time.Now().UTC(), maxMeasurements())

	assert.ErrorIs(t, err, database.ErrReferentialIntegrityViolation)
}

func TestAssessStressLevel_ClassifierFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.controller.RegisterWorker(ctx, annaKey(), false))

	boom := errors.New("model unavailable")
	assessment := NewAssessmentController(env.controller, ClassifierFunc(
		func(context.Context, Measurements) (StressLevel, error) { return "", boom },
	))

	_, err := assessment.AssessStressLevel(ctx, annaKey(), time.Now().UTC(), maxMeasurements())
	require.ErrorIs(t, err, boom)

	// The snapshot is already a committed fact; only the prediction is absent.
	infoCount, countErr := env.infos.Count(ctx)
	require.NoError(t, countErr)
	predictionCount, countErr := env.predictions.Count(ctx)
	require.NoError(t, countErr)
	assert.EqualValues(t, 1, infoCount)
	assert.EqualValues(t, 0, predictionCount)
}
