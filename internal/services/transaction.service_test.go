package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"antistress/config"
	"antistress/internal/database"
	"antistress/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) database.DB {
	t.Helper()

	db, err := database.New(config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Migrate()
	require.NoError(t, err)

	return db
}

func TestGetTransaction_EmptyContext(t *testing.T) {
	tx, ok := GetTransaction(context.Background())

	assert.False(t, ok)
	assert.Nil(t, tx)
}

func TestExecute_CarriesTransactionInContext(t *testing.T) {
	db := testDB(t)
	service := NewTransactionService(db)

	err := service.Execute(context.Background(), func(ctx context.Context) error {
		tx, ok := GetTransaction(ctx)
		require.True(t, ok)
		require.NotNil(t, tx)
		return nil
	})

	assert.NoError(t, err)
}

func TestExecute_CommitsOnSuccess(t *testing.T) {
	db := testDB(t)
	service := NewTransactionService(db)

	err := service.Execute(context.Background(), func(ctx context.Context) error {
		tx, _ := GetTransaction(ctx)
		return tx.Create(&models.Worker{
			FirstName:           "Anna",
			LastName:            "Ivanova",
			Surname:             "Petrovna",
			MentalHealthHistory: false,
		}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.SQL.Model(&models.Worker{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestExecute_RollsBackOnError(t *testing.T) {
	db := testDB(t)
	service := NewTransactionService(db)

	boom := errors.New("boom")
	err := service.Execute(context.Background(), func(ctx context.Context) error {
		tx, _ := GetTransaction(ctx)
		if err := tx.Create(&models.Worker{
			FirstName:           "Anna",
			LastName:            "Ivanova",
			Surname:             "Petrovna",
			MentalHealthHistory: false,
		}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The failed unit must leave no partial state behind.
	var count int64
	require.NoError(t, db.SQL.Model(&models.Worker{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
