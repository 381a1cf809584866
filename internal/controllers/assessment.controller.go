package controllers

import (
	"context"
	"time"

	"antistress/internal/logger"
	. "antistress/internal/models"
)

// Classifier is the external predictive model, consumed as an opaque function
// from the ten measurements to one of the three stress levels. Its internals
// live outside this system.
type Classifier interface {
	Classify(ctx context.Context, measurements Measurements) (StressLevel, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, measurements Measurements) (StressLevel, error)

func (f ClassifierFunc) Classify(ctx context.Context, measurements Measurements) (StressLevel, error) {
	return f(ctx, measurements)
}

// AssessmentController drives the end-to-end flow: persist the submitted
// snapshot, ask the external model for a classification, persist the result.
// Snapshot and prediction are two independently committed facts, as in the
// original procedure pair.
type AssessmentController struct {
	worker     *WorkerController
	classifier Classifier
	log        logger.Logger
}

func NewAssessmentController(worker *WorkerController, classifier Classifier) *AssessmentController {
	return &AssessmentController{
		worker:     worker,
		classifier: classifier,
		log:        logger.New("assessmentController"),
	}
}

// AssessStressLevel records the feature snapshot, obtains a classification
// and records it. The returned level is what was logged.
func (c *AssessmentController) AssessStressLevel(
	ctx context.Context,
	key WorkerKey,
	infoDate time.Time,
	measurements Measurements,
) (StressLevel, error) {
	log := c.log.Function("AssessStressLevel")

	if err := c.worker.RecordFeatureSnapshot(ctx, key, infoDate, measurements); err != nil {
		return "", err
	}

	level, err := c.classifier.Classify(ctx, measurements)
	if err != nil {
		return "", log.Err("classifier failed", err, "firstName", key.FirstName, "lastName", key.LastName)
	}

	if err := c.worker.RecordPrediction(ctx, key, level); err != nil {
		return "", err
	}

	log.Info("assessed stress level", "firstName", key.FirstName, "lastName", key.LastName, "stressLevel", level.Label())
	return level, nil
}
