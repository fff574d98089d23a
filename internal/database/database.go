// Package database opens the device-local SQLite store and applies goose
// migrations. SQLite is the durable key-value surface the gate persists
// economy, session, cooldown and adaptive state into; it is local to one
// device and one process, which is all the gate requires.
package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/focusnest/focusgate/internal/database/schema"
)

// DB is the narrow handle the server health checks need.
type DB interface {
	Ping() error
	Close() error
}

// Open opens (or creates) the SQLite database at path and applies pending
// migrations. Use ":memory:" for throwaway test databases.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}

	// Single connection: the gate is one logical thread of control and
	// SQLite writes serialize anyway.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Default().Info(LogMsgSuccessfullyOpenedDatabase, "path", path)
	return db, nil
}

// Migrate applies all pending goose migrations from the embedded schema.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schema.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(GooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.Up(db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return nil
}
