package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunMigrations brings the schema up to date. Each SQL file creates or
// alters tables idempotently, so a fresh shop database and an old one
// converge on the same layout.
func RunMigrations(conn *sql.DB, dbType string) error {
	migrator, err := newMigrator(conn, dbType)
	if err != nil {
		return err
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// Version reports the applied schema version and whether the last run left it dirty.
func Version(conn *sql.DB, dbType string) (uint, bool, error) {
	migrator, err := newMigrator(conn, dbType)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrator(conn *sql.DB, dbType string) (*migrate.Migrate, error) {
	if conn == nil {
		return nil, errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	var (
		driver     database.Driver
		driverName string
	)
	switch dbType {
	case db.TypeSQLite, db.TypeSQLiteCGO, "":
		driver, err = sqlite3.WithInstance(conn, &sqlite3.Config{})
		driverName = "sqlite3"
	case db.TypePostgres:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
		driverName = "postgres"
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return migrator, nil
}
