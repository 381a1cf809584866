package services

import (
	"context"

	"antistress/internal/database"
	"antistress/internal/logger"

	"gorm.io/gorm"
)

type transactionKey struct{}

// TransactionService runs a unit of work inside a single database transaction
// and carries the transaction handle through the context, where repositories
// pick it up via GetTransaction. Key resolution and the dependent write of an
// access procedure always share one transaction, so a concurrent deregister
// serializes entirely before or entirely after the whole unit.
type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("transactionService"),
	}
}

// Execute runs fn inside one transaction. fn receives a context holding the
// transaction; any error rolls everything back, leaving state unchanged.
func (s *TransactionService) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	log := s.log.Function("Execute")

	err := s.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, transactionKey{}, tx))
	})
	if err != nil {
		log.Warn("transaction rolled back", "error", err)
		return err
	}

	return nil
}

// GetTransaction returns the ambient transaction, if the context carries one.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(transactionKey{}).(*gorm.DB)
	return tx, ok
}
