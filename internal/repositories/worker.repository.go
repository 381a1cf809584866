package repositories

import (
	"context"
	"errors"

	"antistress/internal/database"
	"antistress/internal/logger"
	. "antistress/internal/models"
	"antistress/internal/services"

	"gorm.io/gorm"
)

// WorkerRepository owns worker identity. ResolveKey is the only sanctioned
// translation from the natural key to the surrogate id and must run inside
// the same transaction as any dependent write.
type WorkerRepository interface {
	Register(ctx context.Context, worker *Worker) error
	Deregister(ctx context.Context, key WorkerKey) (int64, error)
	ResolveKey(ctx context.Context, key WorkerKey) (int, bool, error)
	GetByKey(ctx context.Context, key WorkerKey) (*Worker, error)
	Count(ctx context.Context) (int64, error)
}

type workerRepository struct {
	db  database.DB
	log logger.Logger
}

func NewWorker(db database.DB) WorkerRepository {
	return &workerRepository{
		db:  db,
		log: logger.New("workerRepository"),
	}
}

func (r *workerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *workerRepository) Register(ctx context.Context, worker *Worker) error {
	log := r.log.Function("Register")

	if err := r.getDB(ctx).Create(worker).Error; err != nil {
		classified := database.ClassifyError(err)
		if errors.Is(classified, database.ErrUniquenessViolation) {
			log.Warn("natural key already registered",
				"firstName", worker.FirstName,
				"lastName", worker.LastName,
				"surname", worker.Surname,
			)
			return classified
		}
		return log.Err("failed to register worker", classified)
	}

	return nil
}

// Deregister removes the worker matching the natural key; the store cascades
// the delete to all owned snapshots and predictions. A missing worker is not
// an error: callers inspect the affected-row count.
func (r *workerRepository) Deregister(ctx context.Context, key WorkerKey) (int64, error) {
	log := r.log.Function("Deregister")

	result := r.getDB(ctx).
		Where("first_name = ? AND last_name = ? AND surname = ?", key.FirstName, key.LastName, key.Surname).
		Delete(&Worker{})
	if result.Error != nil {
		return 0, log.Err("failed to deregister worker", database.ClassifyError(result.Error))
	}

	log.Info("deregistered worker",
		"firstName", key.FirstName,
		"lastName", key.LastName,
		"surname", key.Surname,
		"rowsAffected", result.RowsAffected,
	)
	return result.RowsAffected, nil
}

// ResolveKey returns the surrogate id for a natural key, with found=false
// when no worker matches. Absence is not an error here; the dependent insert
// is what fails, referentially, against the store.
func (r *workerRepository) ResolveKey(ctx context.Context, key WorkerKey) (int, bool, error) {
	log := r.log.Function("ResolveKey")

	var worker Worker
	err := r.getDB(ctx).
		Select("worker_id").
		Where("first_name = ? AND last_name = ? AND surname = ?", key.FirstName, key.LastName, key.Surname).
		First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, log.Err("failed to resolve worker key", err)
	}

	return worker.WorkerID, true, nil
}

func (r *workerRepository) GetByKey(ctx context.Context, key WorkerKey) (*Worker, error) {
	log := r.log.Function("GetByKey")

	var worker Worker
	err := r.getDB(ctx).
		Where("first_name = ? AND last_name = ? AND surname = ?", key.FirstName, key.LastName, key.Surname).
		First(&worker).Error
	if err != nil {
		return nil, log.Err("failed to get worker by key", err,
			"firstName", key.FirstName,
			"lastName", key.LastName,
			"surname", key.Surname,
		)
	}

	return &worker, nil
}

func (r *workerRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&Worker{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count workers", err)
	}

	return count, nil
}
