package database

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations and returns how many were
// applied. The migration files are the authoritative schema; every integrity
// rule (uniqueness, ranges, enum, cascades) lives there as a named constraint.
func (s *DB) Migrate() (int, error) {
	log := s.log.Function("Migrate")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return 0, log.Err("failed to get database from GORM", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", source, migrate.Up)
	if err != nil {
		return 0, log.Err("failed to apply migrations", err)
	}

	log.Info("migrations applied", "count", applied)
	return applied, nil
}
