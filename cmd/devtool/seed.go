package main

import (
	"context"
	"fmt"

	"github.com/greenlegacy-ng/greenlegacy/internal/database"
	"github.com/greenlegacy-ng/greenlegacy/internal/database/postgres"
	"github.com/greenlegacy-ng/greenlegacy/internal/dataset"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load the embedded demo trees and donations into an empty database"
}

func (c *SeedCommand) Run(_ []string) error {
	PrintHeader("Seeding database")

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := connectApp(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ds, err := dataset.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed dataset: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	if err := postgres.Seed(ctx, pool, ds); err != nil {
		return err
	}

	PrintSuccess("Seed complete (%d trees, %d donations in dataset)", len(ds.Trees), len(ds.Donations))
	return nil
}
