package main

import (
	"context"
	"fmt"
	"time"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the database server to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(_ []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), waitRetryInterval)
		conn, err := connectMaintenance(ctx, cfg)
		if err == nil {
			err = conn.Ping(ctx)
			conn.Close(ctx)
		}
		cancel()
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}
