// Package migrations embeds the schema for every SQL backend and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Backend names, also the embedded directory names.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]string{
	Postgres: "postgres",
	SQLite:   "sqlite3",
}

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Migrate applies all pending migrations for backend.
func Migrate(db *sql.DB, backend string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := gooseDialects[backend]
	if !ok {
		return fmt.Errorf("migration error: unknown backend %q", backend)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, backend); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
