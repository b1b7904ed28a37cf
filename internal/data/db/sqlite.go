package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/workload-backend/internal/platform/logger"
)

// NewSQLiteService opens a SQLite database. The whole run shares one
// connection so an in-memory database stays alive across calls.
func NewSQLiteService(path string, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "SQLiteService")
	serviceLog.Info("Opening sqlite...", "path", path)

	db, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return &Service{db: db, log: serviceLog}, nil
}

// Open picks the driver by name.
func Open(driver, postgresDSN, sqlitePath string, logg *logger.Logger) (*Service, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteService(sqlitePath, logg)
	case "postgres", "":
		return NewPostgresService(postgresDSN, logg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}
