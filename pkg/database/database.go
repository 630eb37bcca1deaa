package database

import (
	"fmt"
	"strings"
	"time"

	"gohoops/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the store pointed at by the configuration.
// A sqlite:// URL selects the local file backed store, anything else is
// treated as a postgres DSN.
// Return the connection pool.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	dialector := openDialector(cfg.DatabaseURL)

	// Create the database instance.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get the SQL database itself.
	sqlDb, sqlErr := db.DB()

	// Verify if could get the connection.
	if sqlErr != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", sqlErr)
	}

	// Set the pool values. A single sequential ingest process needs few
	// connections, the pool mostly covers the test helpers.
	sqlDb.SetMaxOpenConns(10)
	sqlDb.SetMaxIdleConns(2)
	sqlDb.SetConnMaxLifetime(time.Hour)
	sqlDb.SetConnMaxIdleTime(time.Hour)

	// Test the connection
	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// openDialector picks the gorm driver based on the URL scheme.
func openDialector(url string) gorm.Dialector {
	if path, ok := strings.CutPrefix(url, "sqlite://"); ok {
		return sqlite.Open(path)
	}
	return postgres.Open(url)
}
