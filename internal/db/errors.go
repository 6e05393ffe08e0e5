package db

import (
	"errors"

	"github.com/go-sql-driver/mysql" // MySQL server error type
	"github.com/mattn/go-sqlite3"    // SQLite error codes
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is the MySQL server error number for a unique key violation
const mysqlDuplicateEntry = 1062

// IsUniqueViolation reports whether err was caused by a unique constraint.
// Other persistence failures return false and must propagate unchanged.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
