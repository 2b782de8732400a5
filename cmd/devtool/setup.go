package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

const setupSteps = 4

type SetupCommand struct{}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Setup development environment (.env, database, migrations, seed)"
}

func (c *SetupCommand) Run(_ []string) error {
	PrintHeader("Starting Environment Setup")

	PrintStep(1, setupSteps, "Configuring environment...")
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		if err := copyFile(".env.example", ".env"); err != nil {
			return fmt.Errorf("failed to create .env: %w", err)
		}
		PrintSuccess(".env created from .env.example")
		PrintWarning("Review the DB_* values in .env, then re-run setup")
		return nil
	}
	PrintSuccess(".env already exists")

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}

	PrintStep(2, setupSteps, "Waiting for database server...")
	if err := (&WaitForDBCommand{}).Run(nil); err != nil {
		return err
	}

	PrintStep(3, setupSteps, "Creating database...")
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	conn, err := connectMaintenance(ctx, cfg)
	if err != nil {
		return err
	}
	exists, err := databaseExists(ctx, conn, cfg.DBName)
	if err == nil && !exists {
		err = createDatabase(ctx, conn, cfg.DBName)
	}
	conn.Close(ctx)
	if err != nil {
		return err
	}
	if exists {
		PrintSuccess("Database %s already exists", cfg.DBName)
	} else {
		PrintSuccess("Database %s created", cfg.DBName)
	}

	PrintStep(4, setupSteps, "Migrating and seeding...")
	if err := (&SeedCommand{}).Run(nil); err != nil {
		return err
	}

	PrintSuccess("Setup complete! Set STORAGE_DRIVER=postgres and run the app.")
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}
