package main

import (
	"hotel_reservation/internal/config" // Custom import path (Config)
	"hotel_reservation/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	closer, err := config.SetupLogger(cfg)
	if err != nil {
		logrus.Fatalf("failed to open log file: %v", err)
	}
	defer closer.Close()

	conn, err := db.Open(cfg) // Open the configured database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration complete")
}
