package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rrens/jusoor-api/internal/config"
	"github.com/Rrens/jusoor-api/internal/repository/store"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	dir := store.Up
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "up":
		case "down":
			dir = store.Down
		default:
			fmt.Fprintf(os.Stderr, "usage: %s [up|down]\n", os.Args[0])
			os.Exit(2)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Running %s migrations on %s...\n", dir, cfg.Database.Driver)

	if err := store.RunMigrations(cfg.Database, dir); err != nil {
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	fmt.Println("Migrations applied successfully")
}
