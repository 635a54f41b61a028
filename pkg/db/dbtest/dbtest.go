// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/migration"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/seed"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var counter atomic.Int64

// Open returns a fresh, migrated and seeded SQLite database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	path := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, counter.Add(1))

	conn, err := db.Open(db.Config{Type: db.TypeSQLite, Path: path}, gormlogger.Discard)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.RunMigrations(sqlDB, db.TypeSQLite))
	require.NoError(t, seed.Ensure(context.Background(), conn))
	return conn
}

// Node returns a snowflake node for generating row ids in tests.
func Node(t testing.TB) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

// Customer inserts a customer row and returns its id.
func Customer(t testing.TB, conn *gorm.DB, node *snowflake.Node, name, place string) snowflake.ID {
	t.Helper()
	id := node.Generate()
	now := time.Now().UTC()
	require.NoError(t, conn.Exec(
		`INSERT INTO customers (id, name, place, phone, tax_id, address, email, created_at, updated_at)
		 VALUES (?, ?, ?, '', '', '', '', ?, ?)`,
		id, name, place, now, now,
	).Error)
	return id
}

// Product inserts an active product row and returns its id.
func Product(t testing.TB, conn *gorm.DB, node *snowflake.Node, name, kind, rate string) snowflake.ID {
	t.Helper()
	id := node.Generate()
	now := time.Now().UTC()
	require.NoError(t, conn.Exec(
		`INSERT INTO products (id, name, type, rate_per_sqft, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, kind, rate, true, now, now,
	).Error)
	return id
}

// Count returns the number of rows in table.
func Count(t testing.TB, conn *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Table(table).Count(&n).Error)
	return n
}
