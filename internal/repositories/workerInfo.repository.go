package repositories

import (
	"context"

	"antistress/internal/database"
	"antistress/internal/logger"
	. "antistress/internal/models"
	"antistress/internal/services"

	"gorm.io/gorm"
)

// WorkerInfoRepository owns feature snapshots. Inserts are never pre-validated
// in Go: the store's range checks and the worker foreign key decide validity,
// and a failed insert writes nothing.
type WorkerInfoRepository interface {
	Insert(ctx context.Context, info *WorkerInfo) error
	ListByWorkerID(ctx context.Context, workerID int) ([]*WorkerInfo, error)
	CountByWorkerID(ctx context.Context, workerID int) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type workerInfoRepository struct {
	db  database.DB
	log logger.Logger
}

func NewWorkerInfo(db database.DB) WorkerInfoRepository {
	return &workerInfoRepository{
		db:  db,
		log: logger.New("workerInfoRepository"),
	}
}

func (r *workerInfoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *workerInfoRepository) Insert(ctx context.Context, info *WorkerInfo) error {
	log := r.log.Function("Insert")

	if err := r.getDB(ctx).Create(info).Error; err != nil {
		return log.Err("failed to insert feature snapshot",
			database.ClassifyError(err),
			"workerID", info.WorkerID,
			"infoDate", info.InfoDate,
		)
	}

	return nil
}

func (r *workerInfoRepository) ListByWorkerID(ctx context.Context, workerID int) ([]*WorkerInfo, error) {
	log := r.log.Function("ListByWorkerID")

	var infos []*WorkerInfo
	err := r.getDB(ctx).
		Where("worker_id = ?", workerID).
		Order("info_date").
		Find(&infos).Error
	if err != nil {
		return nil, log.Err("failed to list feature snapshots", err, "workerID", workerID)
	}

	return infos, nil
}

func (r *workerInfoRepository) CountByWorkerID(ctx context.Context, workerID int) (int64, error) {
	log := r.log.Function("CountByWorkerID")

	var count int64
	err := r.getDB(ctx).Model(&WorkerInfo{}).Where("worker_id = ?", workerID).Count(&count).Error
	if err != nil {
		return 0, log.Err("failed to count feature snapshots", err, "workerID", workerID)
	}

	return count, nil
}

func (r *workerInfoRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&WorkerInfo{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count feature snapshots", err)
	}

	return count, nil
}
