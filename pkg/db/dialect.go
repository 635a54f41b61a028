package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	mattnsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Dialect(cfg Config) (gorm.Dialector, error) {
	switch cfg.Type {
	case TypeSQLite, "":
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	case TypeSQLiteCGO:
		return mattnsqlite.Open(cgoSQLiteDSN(cfg.Path)), nil
	case TypePostgres:
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			cfg.SSLMode,
		)), nil
	default:
		return nil, fmt.Errorf("unsupported %s type", cfg.Type)
	}
}

// SQLiteDSN builds a glebarez/sqlite DSN with foreign keys enforced.
// Paths that already carry a query string (in-memory test databases) keep it.
func SQLiteDSN(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "glassworks.db"
	}
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if strings.Contains(path, "mode=memory") {
		return path + "&" + pragmas
	}
	if strings.Contains(path, "?") {
		return path + "&" + pragmas + "&_pragma=journal_mode(WAL)"
	}
	return path + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}

func cgoSQLiteDSN(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "glassworks.db"
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}
