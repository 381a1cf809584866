package database

import (
	"errors"
	"path/filepath"
	"testing"

	"antistress/config"
	"antistress/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}
}

func TestNew_Success(t *testing.T) {
	db, err := New(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	assert.NotNil(t, db.SQL)

	sqlDB, err := db.SQL.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New(config.Config{DatabaseDbPath: ""})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestNew_ForeignKeysEnforced(t *testing.T) {
	db, err := New(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.SQL.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled, "foreign_keys pragma must be on for cascades to fire")
}

func TestMigrate_AppliesOnceThenNoop(t *testing.T) {
	db, err := New(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	applied, err := db.Migrate()
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	for _, table := range []string{"workers", "workers_info", "stress_predictions"} {
		assert.True(t, db.SQL.Migrator().HasTable(table), "missing table %s", table)
	}

	applied, err = db.Migrate()
	require.NoError(t, err)
	assert.Equal(t, 0, applied, "migrations must be idempotent")
}

func TestInitializeSQLiteDB_CreatesDirectory(t *testing.T) {
	db := &DB{log: logger.New("test")}

	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	err := db.initializeSQLiteDB(&gorm.Config{}, config.Config{DatabaseDbPath: dbPath})
	require.NoError(t, err)

	assert.FileExists(t, dbPath)

	sqlDB, _ := db.SQL.DB()
	_ = sqlDB.Close()
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil passes through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "unique constraint",
			err:      errors.New("UNIQUE constraint failed: workers.first_name, workers.last_name, workers.surname"),
			expected: ErrUniquenessViolation,
		},
		{
			name:     "foreign key constraint",
			err:      errors.New("FOREIGN KEY constraint failed"),
			expected: ErrReferentialIntegrityViolation,
		},
		{
			name:     "measurement range check",
			err:      errors.New("CHECK constraint failed: chk_workers_info_anxiety"),
			expected: ErrRangeViolation,
		},
		{
			name:     "stress level enum check",
			err:      errors.New("CHECK constraint failed: chk_stress_predictions_stress_level"),
			expected: ErrDomainViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)

			if tt.expected == nil {
				assert.NoError(t, classified)
				return
			}
			assert.ErrorIs(t, classified, tt.expected)
		})
	}
}

func TestClassifyError_UnrelatedErrorPassesThrough(t *testing.T) {
	cause := errors.New("disk I/O error")

	classified := ClassifyError(cause)

	assert.Equal(t, cause, classified)
	assert.NotErrorIs(t, classified, ErrUniquenessViolation)
	assert.NotErrorIs(t, classified, ErrReferentialIntegrityViolation)
	assert.NotErrorIs(t, classified, ErrRangeViolation)
	assert.NotErrorIs(t, classified, ErrDomainViolation)
}
