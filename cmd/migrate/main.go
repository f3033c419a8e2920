package main

import (
	"context" // Context for the admin promotion
	"flag"    // Command line flags

	"rpg_backend/internal/config"     // Custom import path (Config)
	"rpg_backend/internal/db"         // Custom import path (Database)
	"rpg_backend/internal/repository" // Custom import path (Repository)
	"rpg_backend/internal/service"    // Custom import path (Service)
	"rpg_backend/internal/utils"      // Custom import path (Cache)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	admin := flag.String("admin", "", "login id to promote to admin after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	if *admin != "" {
		svc := service.New(repository.New(gdb), utils.NewRedisCache(nil), service.DefaultOptions())
		if err := svc.PromoteAdmin(context.Background(), *admin); err != nil {
			logrus.Fatalf("failed to promote %q: %v", *admin, err)
		}
	}
}
