package sqlite

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// isUniqueViolation reports whether err is a SQLite unique/primary-key
// constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// scanDecimal parses a decimal stored as TEXT. An empty column yields zero.
func scanDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
