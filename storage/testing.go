package storage

import (
	"database/sql"
	"fmt"

	"github.com/loganlanou/clubhub/storage/db"
	_ "github.com/mattn/go-sqlite3"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB() (*sql.DB, *db.Queries, func(), error) {
	database, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	// every pooled connection to :memory: would otherwise get its own empty database
	database.SetMaxOpenConns(1)

	if err := migrate(database, embedMigrations); err != nil {
		database.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		database.Close()
	}

	return database, db.New(database), cleanup, nil
}
