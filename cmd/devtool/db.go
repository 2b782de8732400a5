package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/config"
	"github.com/greenlegacy-ng/greenlegacy/internal/database"
)

const (
	// maintenanceDB is the database used to create or drop the app database
	maintenanceDB = "postgres"

	commandTimeout = 2 * time.Minute
)

// loadDBConfig reads the app configuration for database commands. The
// STORAGE_DRIVER setting is ignored; devtool always talks to postgres.
func loadDBConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.StorageDriver = config.DriverPostgres
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkDBName(cfg.DBName); err != nil {
		return nil, err
	}
	return cfg, nil
}

func connectApp(cfg *config.Config) (*pgxpool.Pool, error) {
	PrintInfo("Connecting to %s", redactPassword(cfg.GetDBConnString()))
	return database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
}

// connectMaintenance opens a single connection to the server's maintenance database
func connectMaintenance(ctx context.Context, cfg *config.Config) (*pgx.Conn, error) {
	connString := database.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, maintenanceDB)
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s database: %w", maintenanceDB, err)
	}
	return conn, nil
}

func databaseExists(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	return exists, nil
}

func createDatabase(ctx context.Context, conn *pgx.Conn, name string) error {
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

// redactPassword masks the password in a postgres URL for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	return u.Redacted()
}
