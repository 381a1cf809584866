package repositories

import (
	"context"

	"antistress/internal/database"
	"antistress/internal/logger"
	. "antistress/internal/models"
	"antistress/internal/services"

	"gorm.io/gorm"
)

// StressPredictionRepository owns the prediction log. The prediction_date is
// assigned at insertion; callers never supply it.
type StressPredictionRepository interface {
	Insert(ctx context.Context, prediction *StressPrediction) error
	ListByWorkerID(ctx context.Context, workerID int) ([]*StressPrediction, error)
	LatestByWorkerID(ctx context.Context, workerID int) (*StressPrediction, error)
	CountByWorkerID(ctx context.Context, workerID int) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type stressPredictionRepository struct {
	db  database.DB
	log logger.Logger
}

func NewStressPrediction(db database.DB) StressPredictionRepository {
	return &stressPredictionRepository{
		db:  db,
		log: logger.New("stressPredictionRepository"),
	}
}

func (r *stressPredictionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *stressPredictionRepository) Insert(ctx context.Context, prediction *StressPrediction) error {
	log := r.log.Function("Insert")

	if err := r.getDB(ctx).Create(prediction).Error; err != nil {
		return log.Err("failed to insert stress prediction",
			database.ClassifyError(err),
			"workerID", prediction.WorkerID,
		)
	}

	return nil
}

func (r *stressPredictionRepository) ListByWorkerID(ctx context.Context, workerID int) ([]*StressPrediction, error) {
	log := r.log.Function("ListByWorkerID")

	var predictions []*StressPrediction
	err := r.getDB(ctx).
		Where("worker_id = ?", workerID).
		Order("prediction_date").
		Find(&predictions).Error
	if err != nil {
		return nil, log.Err("failed to list stress predictions", err, "workerID", workerID)
	}

	return predictions, nil
}

func (r *stressPredictionRepository) LatestByWorkerID(ctx context.Context, workerID int) (*StressPrediction, error) {
	log := r.log.Function("LatestByWorkerID")

	var prediction StressPrediction
	err := r.getDB(ctx).
		Where("worker_id = ?", workerID).
		Order("prediction_date DESC").
		First(&prediction).Error
	if err != nil {
		return nil, log.Err("failed to get latest stress prediction", err, "workerID", workerID)
	}

	return &prediction, nil
}

func (r *stressPredictionRepository) CountByWorkerID(ctx context.Context, workerID int) (int64, error) {
	log := r.log.Function("CountByWorkerID")

	var count int64
	err := r.getDB(ctx).Model(&StressPrediction{}).Where("worker_id = ?", workerID).Count(&count).Error
	if err != nil {
		return 0, log.Err("failed to count stress predictions", err, "workerID", workerID)
	}

	return count, nil
}

func (r *stressPredictionRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&StressPrediction{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count stress predictions", err)
	}

	return count, nil
}
