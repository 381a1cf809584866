package controllers

import (
	"context"
	"time"

	"antistress/internal/logger"
	. "antistress/internal/models"
	"antistress/internal/repositories"
	"antistress/internal/services"
)

// WorkerController is the only sanctioned write path into the store. Each
// operation is one transaction: key resolution and the dependent write can
// never be split by a concurrent deregistration.
type WorkerController struct {
	workerRepo     repositories.WorkerRepository
	infoRepo       repositories.WorkerInfoRepository
	predictionRepo repositories.StressPredictionRepository
	txService      *services.TransactionService
	log            logger.Logger
}

func NewWorkerController(
	workerRepo repositories.WorkerRepository,
	infoRepo repositories.WorkerInfoRepository,
	predictionRepo repositories.StressPredictionRepository,
	txService *services.TransactionService,
) *WorkerController {
	return &WorkerController{
		workerRepo:     workerRepo,
		infoRepo:       infoRepo,
		predictionRepo: predictionRepo,
		txService:      txService,
		log:            logger.New("workerController"),
	}
}

// RegisterWorker inserts a new worker. A duplicate natural key surfaces as
// database.ErrUniquenessViolation.
func (c *WorkerController) RegisterWorker(ctx context.Context, key WorkerKey, mentalHealthHistory bool) error {
	log := c.log.Function("RegisterWorker")

	err := c.txService.Execute(ctx, func(ctx context.Context) error {
		return c.workerRepo.Register(ctx, &Worker{
			FirstName:           key.FirstName,
			LastName:            key.LastName,
			Surname:             key.Surname,
			MentalHealthHistory: mentalHealthHistory,
		})
	})
	if err != nil {
		return err
	}

	log.Info("registered worker", "firstName", key.FirstName, "lastName", key.LastName)
	return nil
}

// DeregisterWorker deletes the worker and, through the store's cascades, all
// owned snapshots and predictions. A missing worker is a no-op reporting zero
// affected rows, never an error.
func (c *WorkerController) DeregisterWorker(ctx context.Context, key WorkerKey) (int64, error) {
	log := c.log.Function("DeregisterWorker")

	var rowsAffected int64
	err := c.txService.Execute(ctx, func(ctx context.Context) error {
		var err error
		rowsAffected, err = c.workerRepo.Deregister(ctx, key)
		return err
	})
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		log.Info("no worker matched natural key", "firstName", key.FirstName, "lastName", key.LastName)
	}
	return rowsAffected, nil
}

// RecordFeatureSnapshot resolves the natural key and inserts the snapshot in
// the same transaction. Resolution yielding absent does not short-circuit:
// the insert proceeds against the store, whose foreign key rejects it as a
// referential integrity violation. The store likewise owns range validity.
func (c *WorkerController) RecordFeatureSnapshot(
	ctx context.Context,
	key WorkerKey,
	infoDate time.Time,
	measurements Measurements,
) error {
	log := c.log.Function("RecordFeatureSnapshot")

	err := c.txService.Execute(ctx, func(ctx context.Context) error {
		workerID, found, err := c.workerRepo.ResolveKey(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			log.Warn("natural key did not resolve", "firstName", key.FirstName, "lastName", key.LastName)
		}

		return c.infoRepo.Insert(ctx, &WorkerInfo{
			WorkerID:     workerID,
			InfoDate:     infoDate,
			Measurements: measurements,
		})
	})
	if err != nil {
		return err
	}

	log.Info("recorded feature snapshot", "firstName", key.FirstName, "lastName", key.LastName, "infoDate", infoDate)
	return nil
}

// RecordPrediction resolves the natural key and logs the classification. The
// prediction timestamp is assigned by the store at insertion. An unknown
// stress level is rejected by the store's enum check as a domain violation.
func (c *WorkerController) RecordPrediction(ctx context.Context, key WorkerKey, stressLevel StressLevel) error {
	log := c.log.Function("RecordPrediction")

	err := c.txService.Execute(ctx, func(ctx context.Context) error {
		workerID, found, err := c.workerRepo.ResolveKey(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			log.Warn("natural key did not resolve", "firstName", key.FirstName, "lastName", key.LastName)
		}

		return c.predictionRepo.Insert(ctx, &StressPrediction{
			WorkerID:    workerID,
			StressLevel: stressLevel,
		})
	})
	if err != nil {
		return err
	}

	log.Info("recorded stress prediction", "firstName", key.FirstName, "lastName", key.LastName)
	return nil
}
