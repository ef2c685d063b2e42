package main

import (
	"log"

	"github.com/fitgym/fgms/cmd/seed/seed"
	"github.com/fitgym/fgms/internal/config"
)

func main() {
	cfg := config.New()
	if !cfg.IsDev {
		log.Fatal("Seeding is only allowed in development environment")
	}

	seeder, cleanup, err := seed.NewSeeder(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}
	defer cleanup()

	seeder.ResetDB()
	seeder.CreateAdminUser()
	seeder.CreateSampleMembers()
}
