package database

// Driver / migration configuration
const (
	// DriverName is the database/sql driver registered by modernc.org/sqlite
	DriverName = "sqlite"

	// GooseDialect is the goose dialect for SQLite databases
	GooseDialect = "sqlite3"

	// MigrationsDir is the path of migrations inside the embedded schema FS
	MigrationsDir = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToOpenDatabase = "failed to open database"
	ErrMsgFailedToPingDatabase = "failed to ping database"
	ErrMsgFailedToSetDialect   = "failed to set migration dialect"
	ErrMsgFailedToMigrate      = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyOpenedDatabase = "Successfully opened the database"
)
