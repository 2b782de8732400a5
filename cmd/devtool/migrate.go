package main

import (
	"context"
	"fmt"

	"github.com/greenlegacy-ng/greenlegacy/internal/database"
)

const migrationsDir = "internal/database/migrations"

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}
	subcmd := args[0]

	// Creating a file needs no database; goose is pinned in tools.go
	if subcmd == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		if err := checkMigrationName(args[1]); err != nil {
			return err
		}
		return runGoTool("github.com/pressly/goose/v3/cmd/goose", "-dir", migrationsDir, "create", args[1], "sql")
	}

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := connectApp(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch subcmd {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	case "down":
		if err := database.RollbackMigration(ctx, pool); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}

	version, err := database.MigrationVersion(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	PrintSuccess("Schema version: %d", version)
	return nil
}
