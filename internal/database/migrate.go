package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/greenlegacy-ng/greenlegacy/internal/database/migrations"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

func openMigrator(pool *pgxpool.Pool) (*sql.DB, error) {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(DialectPostgres); err != nil {
		return nil, err
	}
	return stdlib.OpenDBFromPool(pool), nil
}

// Migrate applies every embedded migration that has not run yet
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db, err := openMigrator(pool)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "version", version)
	return nil
}

// RollbackMigration reverts the most recent migration
func RollbackMigration(ctx context.Context, pool *pgxpool.Pool) error {
	db, err := openMigrator(pool)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollback, err)
	}
	defer db.Close()

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollback, err)
	}
	return nil
}

// MigrationVersion reports the schema version recorded by goose
func MigrationVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db, err := openMigrator(pool)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	return goose.GetDBVersionContext(ctx, db)
}
