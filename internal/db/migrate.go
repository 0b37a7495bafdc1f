// internal/db/migrate.go
package db

import (
	"database/sql"
	"fmt"

	"wishlist/internal/db/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations runs goose.Up using embedded migrations.
func RunMigrations(sqlDB *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations.FS) // 埋め込みFSを使う
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// MigrationVersion reports the schema version recorded by goose.
func MigrationVersion(sqlDB *sql.DB) (int64, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations.FS)
	return goose.GetDBVersion(sqlDB)
}
