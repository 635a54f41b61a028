package db

import "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"

const (
	TypeSQLite    = "sqlite"  // pure Go driver, the default for the shop PC
	TypeSQLiteCGO = "sqlite3" // mattn driver, for builds with cgo
	TypePostgres  = "postgres"
)

type Config struct {
	Type            string
	Path            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int

	Tracing bool
	Metrics bool
}

// FromConfig extracts the database settings from the application config.
func FromConfig(cfg config.Config) Config {
	return Config{
		Type:            cfg.DBType,
		Path:            cfg.DBPath,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		SSLMode:         cfg.DBSSLMode,
		MaxIdleConn:     cfg.DBMaxIdleConn,
		MaxOpenConn:     cfg.DBMaxOpenConn,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		Tracing:         cfg.OtelEnabled,
		Metrics:         cfg.MetricsEnabled,
	}
}

// IsSQLite reports whether the store is a local SQLite file.
func (c Config) IsSQLite() bool {
	return c.Type == TypeSQLite || c.Type == TypeSQLiteCGO
}
