package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ResetCommand struct{}

func (c *ResetCommand) Name() string {
	return "reset-db"
}

func (c *ResetCommand) Description() string {
	return "Drop and recreate the database, then migrate and seed (--yes skips the prompt)"
}

func (c *ResetCommand) Run(args []string) error {
	PrintHeader("Resetting database")

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	if cfg.Environment == envProduction {
		return fmt.Errorf("refusing to reset a %s database", envProduction)
	}

	if !slices.Contains(args, "--yes") {
		fmt.Printf("This drops database %q. Type %q to continue: ", cfg.DBName, confirmYes)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != confirmYes {
			PrintWarning("Reset cancelled")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	conn, err := connectMaintenance(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	PrintInfo("Terminating existing connections to %s...", cfg.DBName)
	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName)
	if err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	PrintSuccess("Database %s dropped", cfg.DBName)

	if err := createDatabase(ctx, conn, cfg.DBName); err != nil {
		return err
	}
	PrintSuccess("Database %s created", cfg.DBName)

	return (&SeedCommand{}).Run(nil)
}
