package db

import (
	"fmt"                               // Error wrapping
	"hotel_reservation/internal/config" // Application configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM SQL logger
)

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath) // Single-file database
	case "mysql":
		dialector = mysql.Open(cfg.DSN()) // Server database
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	level := logger.Silent // Keep the interactive screen clean
	if cfg.DBDebug {
		level = logger.Info
	}
	return OpenDialector(dialector, level, cfg.DBDriver == "sqlite")
}

// OpenDialector opens a GORM handle for an explicit dialector. SQLite handles are
// limited to one connection since the file allows a single writer.
func OpenDialector(dialector gorm.Dialector, level logger.LogLevel, singleConn bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level), // SQL logging
		TranslateError: true,                          // Map driver errors to gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if singleConn {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
