package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	registry := NewRegistry(
		&SetupCommand{},
		&MigrateCommand{},
		&SeedCommand{},
		&ResetCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
	)
	os.Exit(registry.Dispatch(os.Args[1:]))
}
