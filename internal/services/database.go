package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lk16/reversi/internal/config"
	_ "modernc.org/sqlite"
)

// InitDatabase connects to the archive database. driver is either
// config.DriverPostgres or config.DriverSQLite.
func InitDatabase(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if driver == config.DriverSQLite {
		// sqlite allows a single writer, and every connection to ":memory:"
		// opens its own database.
		db.SetMaxOpenConns(1)

		if _, err = db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return db, nil
}
